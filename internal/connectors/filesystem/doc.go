// Package filesystem provides the local directory input source.
//
// A ficha is a pair of UTF-8 text files named after its code:
//
//	t12.texto.txt   article text, one paragraph per line
//	t12.refs.txt    numbered reference list, one reference per line
//
// Only the top level of the directory is read. Watch uses fsnotify and
// reports one change per ficha code.
package filesystem

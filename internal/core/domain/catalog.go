package domain

// unknownTopic is the label used for topic codes absent from the TopicMap.
const unknownTopic = "Desconocido"

// Subrubro is a subcategory with the code pattern of its fichas.
type Subrubro struct {
	Name string `toml:"name" json:"name"`

	// Pattern is a regular expression matched at the start of the ficha code.
	Pattern string `toml:"pattern" json:"pattern"`
}

// Rubro is a top-level category of the observatory.
type Rubro struct {
	Name      string     `toml:"name" json:"name"`
	Subrubros []Subrubro `toml:"subrubro" json:"subrubros"`
}

// Catalog is the ordered rubro/subrubro tree. Order matters: the first
// matching subrubro wins.
type Catalog struct {
	Rubros []Rubro `toml:"rubro" json:"rubros"`

	// Topics maps the platform's numeric topic code to its label.
	Topics TopicMap `toml:"topics" json:"topics"`
}

// Classification locates a ficha in the catalog.
type Classification struct {
	Rubro    string `json:"rubro,omitempty"`
	Subrubro string `json:"subrubro,omitempty"`
}

// IsZero reports whether the classification is empty.
func (c Classification) IsZero() bool {
	return c.Rubro == "" && c.Subrubro == ""
}

// String returns "rubro / subrubro".
func (c Classification) String() string {
	if c.IsZero() {
		return "(unclassified)"
	}
	return c.Rubro + " / " + c.Subrubro
}

// TopicMap maps topic codes ("tematica") to labels.
type TopicMap map[string]string

// Label returns the label for code, or "Desconocido" when unknown.
func (m TopicMap) Label(code string) string {
	if label, ok := m[code]; ok {
		return label
	}
	return unknownTopic
}

// DefaultTopics returns the topic codes used by the observatory platform.
func DefaultTopics() TopicMap {
	return TopicMap{
		"1":  "Social",
		"2":  "Económica",
		"3":  "Ambiental",
		"4":  "Tecnológica",
		"13": "Política",
		"14": "Ética",
		"15": "General",
	}
}

// DefaultCatalog returns the built-in rubro/subrubro patterns.
func DefaultCatalog() Catalog {
	return Catalog{
		Rubros: []Rubro{
			{Name: "Megatendencias", Subrubros: []Subrubro{{Name: "Megatendencias", Pattern: `^t\d+$`}}},
			{Name: "Fuerzas primarias", Subrubros: []Subrubro{{Name: "Fuerzas primarias", Pattern: `^fp\d+$`}}},
			{Name: "Tendencias", Subrubros: []Subrubro{{Name: "Tendencia territorial", Pattern: `^t\d+_\w+`}}},
			{Name: "Riesgos", Subrubros: []Subrubro{{Name: "Riesgo territorial", Pattern: `^r\d+_\w+`}}},
			{Name: "Oportunidades", Subrubros: []Subrubro{{Name: "Oportunidad territorial", Pattern: `^o\d+_\w+`}}},
			{Name: "Eventos futuros", Subrubros: []Subrubro{
				{Name: "Señal débil", Pattern: `^S\d+$`},
				{Name: "Carta salvaje", Pattern: `^s\d+$`},
				{Name: "Tecnología emergente", Pattern: `^TE_\d+$`},
			}},
		},
		Topics: DefaultTopics(),
	}
}

package journal

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Competency is a professional skill area an entry can evidence.
type Competency struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
}

// Reference is a bibliography entry entries can cite.
type Reference struct {
	ID      string `yaml:"id"`
	Author  string `yaml:"author"`
	Title   string `yaml:"title"`
	Details string `yaml:"details,omitempty"`
}

// Citation formats the reference as `Author - "Title"`.
func (r Reference) Citation() string { return fmt.Sprintf(`%s - "%s"`, r.Author, r.Title) }

// Vocabulary holds the fixed lists entries refer to by id.
type Vocabulary struct {
	Competencies []Competency `yaml:"competencies"`
	Bibliography []Reference  `yaml:"bibliography"`
}

// Codes returns the competency codes in vocabulary order.
func (v *Vocabulary) Codes() []string {
	res := make([]string, len(v.Competencies))
	for i, c := range v.Competencies {
		res[i] = c.ID
	}
	return res
}

// Competency returns the competency of a given code.
func (v *Vocabulary) Competency(id string) (Competency, bool) {
	for _, c := range v.Competencies {
		if c.ID == id {
			return c, true
		}
	}
	return Competency{}, false
}

// CompetencyLabel returns the label of a competency, or the raw id when it is
// not part of the vocabulary.
func (v *Vocabulary) CompetencyLabel(id string) string {
	if c, ok := v.Competency(id); ok {
		return c.Label
	}
	return id
}

// Reference returns the bibliography entry of a given id.
func (v *Vocabulary) Reference(id string) (Reference, bool) {
	for _, r := range v.Bibliography {
		if r.ID == id {
			return r, true
		}
	}
	return Reference{}, false
}

// Citation returns the citation of a reference, or the raw id when it is not
// part of the vocabulary.
func (v *Vocabulary) Citation(id string) string {
	if r, ok := v.Reference(id); ok {
		return r.Citation()
	}
	return id
}

// Author returns the author of a reference, or the raw id when it is not part
// of the vocabulary.
func (v *Vocabulary) Author(id string) string {
	if r, ok := v.Reference(id); ok {
		return r.Author
	}
	return id
}

// DecodeVocabulary reads a vocabulary in YAML. Lists absent from the document
// keep the default values.
func DecodeVocabulary(r io.Reader) (*Vocabulary, error) {
	var v Vocabulary
	if err := yaml.NewDecoder(r).Decode(&v); err != nil && err != io.EOF {
		return nil, fmt.Errorf("invalid vocabulary: %w", err)
	}
	def := DefaultVocabulary()
	if len(v.Competencies) == 0 {
		v.Competencies = def.Competencies
	}
	if len(v.Bibliography) == 0 {
		v.Bibliography = def.Bibliography
	}
	return &v, nil
}

// LoadVocabulary reads a vocabulary file.
func LoadVocabulary(filename string) (*Vocabulary, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	v, err := DecodeVocabulary(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return v, nil
}

// DefaultVocabulary returns the competencies and bibliography of the
// physical education teacher training program.
func DefaultVocabulary() *Vocabulary {
	return &Vocabulary{
		Competencies: []Competency{
			{"CFF2", "CFF 2: Actúa éticamente, iluminado por la propuesta cristiana..."},
			{"CFF3", "CFF 3: Comunica de manera clara y coherente sus ideas..."},
			{"CFF5", "CFF 5: Demuestra capacidad de análisis, abstracción, síntesis y reflexión crítica..."},
			{"CFF8", "CFF 8: Participa en instancias democráticas, comprometiendo su formación..."},
			{"C1", "C1: Pone en acción los conceptos, principios y teorías..."},
			{"C3", "C3: Conoce, comprende y pone en acto el marco curricular..."},
			{"C8", "C8: Construye conocimiento docente a través de la sistematización..."},
			{"C9", "C9: Interactúa constructivamente con estudiantes, familias, comunidades..."},
		},
		Bibliography: []Reference{
			{
				ID:      "day-2012",
				Author:  "Day, C., & Gu, Q. (2012)",
				Title:   "Profesores: vidas nuevas, verdades antiguas: una influencia decisiva en la vida de los alumnos.",
				Details: "Narcea Ediciones. Explora la identidad y el impacto a largo plazo de los docentes.",
			},
			{
				ID:      "fullan-2012",
				Author:  "Fullan, M. (2012)",
				Title:   "Los nuevos significados del cambio en la educación.",
				Details: "Octaedro. Un análisis sobre las dinámicas del cambio en los sistemas educativos.",
			},
			{
				ID:      "hargreaves-2014",
				Author:  "Hargreaves, A. (2014)",
				Title:   "Capital profesional: transformar la enseñanza en cada escuela.",
				Details: "Morata. Propone el concepto de capital profesional (humano, social, decisional) como clave para la mejora.",
			},
			{
				ID:      "tenti-2006",
				Author:  "Tenti Fanfani, E. (comp.) (2006)",
				Title:   "El oficio de docente. Vocación, trabajo y profesión en el siglo XXI.",
				Details: "Siglo XXI. Analiza la evolución de la profesión docente, sus desafíos y tensiones actuales.",
			},
			{
				ID:      "rojas-2011",
				Author:  "Rojas, C. (2011)",
				Title:   "Ética profesional docente: un compromiso pedagógico humanístico.",
				Details: "Revista Humanidades. Aborda la dimensión ética como pilar fundamental del quehacer docente.",
			},
		},
	}
}

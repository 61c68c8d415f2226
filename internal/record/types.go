package record

import "gopkg.in/yaml.v3"

// Record is one decoded server document. Every slot knows whether its key
// was present, so a null value is distinct from a missing one.
type Record struct {
	ID             Field
	Name           Field
	Category       Field
	Description    Field
	Maintainer     Field
	Repository     Section[Repository]
	Authentication Section[Authentication]
	Endpoints      Section[Endpoints]
	Capabilities   Field
	Tags           Field
	Active         Field
	Verification   Section[Verification]
	Metrics        Section[Metrics]

	keys map[string]struct{}
	root *yaml.Node
}

type Repository struct {
	URL Field
}

type Authentication struct {
	Type Field
}

type Endpoints struct {
	Production Field
}

type Verification struct {
	Status Field
}

type Metrics struct {
	LastUpdated Field
}

// Has reports whether a top-level key exists in the document.
func (r *Record) Has(key string) bool {
	if r == nil {
		return false
	}
	_, ok := r.keys[key]
	return ok
}

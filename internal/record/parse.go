package record

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	// ErrEmptyDocument is returned when the input holds no YAML document.
	ErrEmptyDocument = errors.New("document is empty")
	// ErrNotMapping is returned when the document root is not a mapping.
	ErrNotMapping = errors.New("document root must be a mapping")
	// ErrMultipleDocuments is returned when more than one document is present.
	ErrMultipleDocuments = errors.New("multiple YAML documents are not supported")
)

// document mirrors the on-disk layout. yaml.Node slots keep null values
// visible, which plain typed fields would collapse into zero values.
type document struct {
	ID             yaml.Node `yaml:"id"`
	Name           yaml.Node `yaml:"name"`
	Category       yaml.Node `yaml:"category"`
	Description    yaml.Node `yaml:"description"`
	Maintainer     yaml.Node `yaml:"maintainer"`
	Repository     yaml.Node `yaml:"repository"`
	Authentication yaml.Node `yaml:"authentication"`
	Endpoints      yaml.Node `yaml:"endpoints"`
	Capabilities   yaml.Node `yaml:"capabilities"`
	Tags           yaml.Node `yaml:"tags"`
	Active         yaml.Node `yaml:"active"`
	Verification   yaml.Node `yaml:"verification"`
	Metrics        yaml.Node `yaml:"metrics"`
}

type repositoryDocument struct {
	URL yaml.Node `yaml:"url"`
}

type authenticationDocument struct {
	Type yaml.Node `yaml:"type"`
}

type endpointsDocument struct {
	Production yaml.Node `yaml:"production"`
}

type verificationDocument struct {
	Status yaml.Node `yaml:"status"`
}

type metricsDocument struct {
	LastUpdated yaml.Node `yaml:"last_updated"`
}

// Load reads and parses a record file.
func Load(path string) (*Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read record: %w", err)
	}
	return Parse(data)
}

// Parse decodes a single YAML document into a Record.
func Parse(data []byte) (*Record, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	var root yaml.Node
	if err := decoder.Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDocument
		}
		return nil, err
	}
	var extra yaml.Node
	if err := decoder.Decode(&extra); !errors.Is(err, io.EOF) {
		if err == nil {
			return nil, ErrMultipleDocuments
		}
		return nil, err
	}

	body := &root
	if body.Kind == yaml.DocumentNode {
		if len(body.Content) == 0 {
			return nil, ErrEmptyDocument
		}
		body = body.Content[0]
	}
	body = resolveAlias(body)
	if body.Kind != yaml.MappingNode {
		return nil, ErrNotMapping
	}

	var doc document
	if err := body.Decode(&doc); err != nil {
		return nil, err
	}
	rec, err := fromDocument(doc)
	if err != nil {
		return nil, err
	}
	rec.root = body
	rec.keys = topLevelKeys(body)
	return rec, nil
}

// Tree decodes the whole document into generic values, for consumers that
// need fields outside the typed slots.
func (r *Record) Tree() (map[string]any, error) {
	if r == nil || r.root == nil {
		return nil, ErrEmptyDocument
	}
	tree := map[string]any{}
	if err := r.root.Decode(&tree); err != nil {
		return nil, fmt.Errorf("decode record tree: %w", err)
	}
	return tree, nil
}

func fromDocument(doc document) (*Record, error) {
	rec := &Record{
		ID:           newField(doc.ID),
		Name:         newField(doc.Name),
		Category:     newField(doc.Category),
		Description:  newField(doc.Description),
		Maintainer:   newField(doc.Maintainer),
		Capabilities: newField(doc.Capabilities),
		Tags:         newField(doc.Tags),
		Active:       newField(doc.Active),
	}
	var err error
	if rec.Repository, err = decodeSection(doc.Repository, func(d repositoryDocument) Repository {
		return Repository{URL: newField(d.URL)}
	}); err != nil {
		return nil, fmt.Errorf("repository: %w", err)
	}
	if rec.Authentication, err = decodeSection(doc.Authentication, func(d authenticationDocument) Authentication {
		return Authentication{Type: newField(d.Type)}
	}); err != nil {
		return nil, fmt.Errorf("authentication: %w", err)
	}
	if rec.Endpoints, err = decodeSection(doc.Endpoints, func(d endpointsDocument) Endpoints {
		return Endpoints{Production: newField(d.Production)}
	}); err != nil {
		return nil, fmt.Errorf("endpoints: %w", err)
	}
	if rec.Verification, err = decodeSection(doc.Verification, func(d verificationDocument) Verification {
		return Verification{Status: newField(d.Status)}
	}); err != nil {
		return nil, fmt.Errorf("verification: %w", err)
	}
	if rec.Metrics, err = decodeSection(doc.Metrics, func(d metricsDocument) Metrics {
		return Metrics{LastUpdated: newField(d.LastUpdated)}
	}); err != nil {
		return nil, fmt.Errorf("metrics: %w", err)
	}
	return rec, nil
}

// topLevelKeys collects the scalar keys of a mapping node, following merge keys.
func topLevelKeys(node *yaml.Node) map[string]struct{} {
	keys := make(map[string]struct{}, len(node.Content)/2)
	collectKeys(node, keys)
	return keys
}

func collectKeys(node *yaml.Node, keys map[string]struct{}) {
	node = resolveAlias(node)
	switch node.Kind {
	case yaml.SequenceNode:
		for _, item := range node.Content {
			collectKeys(item, keys)
		}
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := resolveAlias(node.Content[i])
			if key.Kind != yaml.ScalarNode {
				continue
			}
			if key.ShortTag() == mergeTag {
				collectKeys(node.Content[i+1], keys)
				continue
			}
			keys[key.Value] = struct{}{}
		}
	}
}

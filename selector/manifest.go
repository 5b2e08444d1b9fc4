package selector

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Manifest declares markers as data. It lets an application mark types and
// methods in a YAML file instead of in code:
//
//	types:
//	  - name: bank.Account
//	    markers: [LogMe]
//	    methods:
//	      - name: deposit
//	        params: [amount]
//	      - name: String
//	        synthetic: true
//	  - name: bank.Ledger
//	    methods:
//	      - name: post
//	        markers: [LogMe]
//	        params: [entry]
//
// A loaded Manifest is immutable and safe for concurrent use.
type Manifest struct {
	Types []TypeDecl `yaml:"types"`

	index map[string]map[string]CallSite
}

// TypeDecl is one type entry of a manifest.
type TypeDecl struct {
	Name    string       `yaml:"name"`
	Markers []Marker     `yaml:"markers"`
	Methods []MethodDecl `yaml:"methods"`
}

// MethodDecl is one method entry of a manifest.
type MethodDecl struct {
	Name      string   `yaml:"name"`
	Markers   []Marker `yaml:"markers"`
	Synthetic bool     `yaml:"synthetic"`
	Params    []string `yaml:"params"`
}

// LoadManifest decodes and validates a manifest. Unknown keys are rejected.
// An empty document yields an empty manifest.
func LoadManifest(r io.Reader) (*Manifest, error) {
	m := &Manifest{}

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(m); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidManifest, err)
	}

	if err := m.build(); err != nil {
		return nil, err
	}
	return m, nil
}

// LoadManifestFile reads the manifest at path.
func LoadManifestFile(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open manifest: %w", err)
	}
	defer f.Close()

	m, err := LoadManifest(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// build validates the declarations and indexes them by type and method name.
func (m *Manifest) build() error {
	m.index = make(map[string]map[string]CallSite, len(m.Types))

	for _, t := range m.Types {
		if t.Name == "" {
			return ErrEmptyTypeName
		}
		if _, ok := m.index[t.Name]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateType, t.Name)
		}

		methods := make(map[string]CallSite, len(t.Methods))
		for _, md := range t.Methods {
			site := t.site(md)
			if err := site.Validate(); err != nil {
				return err
			}
			if _, ok := methods[md.Name]; ok {
				return fmt.Errorf("%w: %s.%s", ErrDuplicateMethod, t.Name, md.Name)
			}
			methods[md.Name] = site
		}
		m.index[t.Name] = methods
	}
	return nil
}

// site builds the call site of one declared method of t.
func (t TypeDecl) site(md MethodDecl) CallSite {
	return CallSite{
		Type: TypeInfo{Name: t.Name, Markers: t.Markers},
		Method: MethodInfo{
			Name:      md.Name,
			Synthetic: md.Synthetic,
			Markers:   md.Markers,
			Params:    md.Params,
		},
	}
}

// CallSite returns the declared call site for typeName.methodName.
// A nil Manifest declares nothing. A Manifest built as a literal, without
// LoadManifest, is searched in declaration order.
func (m *Manifest) CallSite(typeName, methodName string) (CallSite, error) {
	if m == nil {
		return CallSite{}, fmt.Errorf("%w: type %s", ErrUnknownCallSite, typeName)
	}
	if m.index == nil {
		return m.scan(typeName, methodName)
	}

	methods, ok := m.index[typeName]
	if !ok {
		return CallSite{}, fmt.Errorf("%w: type %s", ErrUnknownCallSite, typeName)
	}
	site, ok := methods[methodName]
	if !ok {
		return CallSite{}, fmt.Errorf("%w: %s.%s", ErrUnknownCallSite, typeName, methodName)
	}
	return site, nil
}

func (m *Manifest) scan(typeName, methodName string) (CallSite, error) {
	for _, t := range m.Types {
		if t.Name != typeName {
			continue
		}
		for _, md := range t.Methods {
			if md.Name == methodName {
				return t.site(md), nil
			}
		}
		return CallSite{}, fmt.Errorf("%w: %s.%s", ErrUnknownCallSite, typeName, methodName)
	}
	return CallSite{}, fmt.Errorf("%w: type %s", ErrUnknownCallSite, typeName)
}

// Sites returns every declared call site in declaration order.
func (m *Manifest) Sites() []CallSite {
	if m == nil {
		return nil
	}
	var sites []CallSite
	for _, t := range m.Types {
		for _, md := range t.Methods {
			sites = append(sites, t.site(md))
		}
	}
	return sites
}

// EligibleSites returns the declared call sites e selects, in declaration order.
func (m *Manifest) EligibleSites(e Eligibility) []CallSite {
	var sites []CallSite
	for _, site := range m.Sites() {
		if e.Eligible(site) {
			sites = append(sites, site)
		}
	}
	return sites
}

// world.go — YAML description of a domain chain
//
// A world file lists domains in construction order. The first entry with no
// parent becomes the bootstrap (uninitialized) root and gets its default
// memory forced immediately afterwards, the way the player initializes the
// globals domain; every other entry is a movie domain under its named
// parent. Each domain gets one synthetic script whose globals carry the
// listed definitions, which are then exported under first-wins rules.
//
// Example:
//
//	domains:
//	  - name: playerglobals
//	    definitions:
//	      - name: "__AS3__.vec::Vector"
//	        generic: true
//	      - name: int
//	  - name: movie
//	    parent: playerglobals
//	    memory: 2048
//	    definitions:
//	      - name: Main
package commands

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	avm2 "github.com/nickjhughes/ruffle"
)

type worldFile struct {
	Domains []worldDomain `yaml:"domains"`
}

type worldDomain struct {
	Name        string     `yaml:"name"`
	Parent      string     `yaml:"parent"`
	Memory      int        `yaml:"memory"`
	Definitions []worldDef `yaml:"definitions"`
}

type worldDef struct {
	Name    string `yaml:"name"`
	Generic bool   `yaml:"generic"`
}

// World is a loaded domain chain addressable by domain name.
type World struct {
	Order   []string
	Domains map[string]*avm2.Domain
}

// Get returns the named domain, defaulting to the last (leafmost) domain
// when name is empty.
func (w *World) Get(name string) (*avm2.Domain, error) {
	if name == "" {
		if len(w.Order) == 0 {
			return nil, fmt.Errorf("world has no domains")
		}
		name = w.Order[len(w.Order)-1]
	}
	d, ok := w.Domains[name]
	if !ok {
		return nil, fmt.Errorf("unknown domain %q", name)
	}
	return d, nil
}

// LoadWorld reads and builds a world file. An empty path yields the default
// world: playerglobals with the core classes, plus one movie domain.
func LoadWorld(path string) (*World, error) {
	if path == "" {
		return buildWorld(defaultWorld())
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var wf worldFile
	if err := yaml.Unmarshal(raw, &wf); err != nil {
		return nil, fmt.Errorf("parse world %s: %w", path, err)
	}
	return buildWorld(wf)
}

func buildWorld(wf worldFile) (*World, error) {
	w := &World{Domains: map[string]*avm2.Domain{}}
	for _, wd := range wf.Domains {
		if wd.Name == "" {
			return nil, fmt.Errorf("world domain with no name")
		}
		if _, dup := w.Domains[wd.Name]; dup {
			return nil, fmt.Errorf("duplicate domain %q", wd.Name)
		}

		var dom *avm2.Domain
		if wd.Parent == "" {
			// Bootstrap root: created uninitialized, then memory is forced
			// before anything else happens in this world.
			dom = avm2.UninitializedDomain(nil)
			dom.InitDefaultDomainMemory()
		} else {
			parent, ok := w.Domains[wd.Parent]
			if !ok {
				return nil, fmt.Errorf("domain %q: parent %q not defined yet", wd.Name, wd.Parent)
			}
			dom = avm2.MovieDomain(parent)
		}
		if wd.Memory > 0 {
			dom.Memory().SetLength(wd.Memory)
		}

		script := avm2.NewScript(dom)
		for _, def := range wd.Definitions {
			qname := avm2.ParseQName(def.Name)
			var class *avm2.Class
			if def.Generic {
				class = avm2.NewGenericClass(qname)
			} else {
				class = avm2.NewClass(qname)
			}
			script.DefineValue(qname, class)
			dom.ExportDefinition(qname, script)
			dom.ExportClass(class)
		}

		w.Domains[wd.Name] = dom
		w.Order = append(w.Order, wd.Name)
	}
	return w, nil
}

// defaultWorld mirrors a freshly-booted player: a globals domain with the
// core classes and a single empty movie domain under it.
func defaultWorld() worldFile {
	core := []worldDef{
		{Name: "Object"},
		{Name: "int"},
		{Name: "uint"},
		{Name: "Number"},
		{Name: "String"},
		{Name: "Boolean"},
		{Name: "__AS3__.vec::Vector", Generic: true},
		{Name: "flash.utils::ByteArray"},
	}
	return worldFile{Domains: []worldDomain{
		{Name: "playerglobals", Definitions: core},
		{Name: "movie", Parent: "playerglobals"},
	}}
}

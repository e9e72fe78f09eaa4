package parser

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/dave/dst"
	"github.com/dave/dst/decorator"
	"github.com/dave/dst/decorator/resolver/gopackages"
	godiffpatch "github.com/sourcegraph/go-diff-patch"

	"github.com/structgen/go-struct-accessors/internal/util"
)

// GenerationManager tracks accessor generation across all loaded packages:
// which files changed, how many methods were generated, and where the
// output goes. Each transformation is confined to its own file's tree, so
// nothing here is shared with any other manager.
type GenerationManager struct {
	diffFile    string
	userAppPath string // path to the user's application as provided by the user
	debug       bool
	generated   int
	packages    map[string]*packageState
}

// packageState holds per-package generation state.
type packageState struct {
	pkg     *decorator.Package
	changed map[*dst.File]bool
}

// NewGenerationManager initializes a GenerationManager for the given
// packages.
func NewGenerationManager(pkgs []*decorator.Package, diffFile, userAppPath string) *GenerationManager {
	manager := &GenerationManager{
		diffFile:    diffFile,
		userAppPath: userAppPath,
		packages:    map[string]*packageState{},
	}

	for _, pkg := range pkgs {
		manager.packages[pkg.ID] = &packageState{
			pkg:     pkg,
			changed: map[*dst.File]bool{},
		}
	}

	return manager
}

// EnableDebug makes the manager dump every generated declaration to the
// log.
func (m *GenerationManager) EnableDebug() {
	m.debug = true
}

// GenerateAccessors applies accessor generation to every file of every
// loaded package. Only the syntax trees are modified; no source is written
// until WriteDiff or WriteInPlace. A malformed declaration stops the whole
// run before any output exists.
func (m *GenerationManager) GenerateAccessors() error {
	for _, state := range m.packages {
		for _, file := range state.pkg.Syntax {
			methods, changed, err := TransformFile(file)
			if err != nil {
				return fmt.Errorf("%s: %w", state.pkg.Decorator.Filenames[file], err)
			}
			if !changed {
				continue
			}

			state.changed[file] = true
			m.generated += len(methods)
			if m.debug {
				for _, method := range methods {
					log.Printf("generated %s:\n%s", method.Name.Name, util.DebugPrint(method))
				}
			}
		}
	}

	log.Printf("generated %d accessor methods", m.generated)
	return nil
}

// CreateDiffFile truncates or creates the diff output file.
func (m *GenerationManager) CreateDiffFile() error {
	f, err := os.Create(m.diffFile)
	f.Close()
	return err
}

// WriteDiff writes the generated changes as a unified diff against the
// original source files.
func (m *GenerationManager) WriteDiff() error {
	for _, state := range m.packages {
		r := decorator.NewRestorerWithImports(state.pkg.Dir, gopackages.New(state.pkg.Dir))

		for _, file := range state.pkg.Syntax {
			if !state.changed[file] {
				continue
			}

			path := state.pkg.Decorator.Filenames[file]
			originalFile, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			// what this file will be named in the diff file
			absAppPath, err := filepath.Abs(m.userAppPath)
			if err != nil {
				return err
			}
			diffFileName, err := filepath.Rel(absAppPath, path)
			if err != nil {
				return err
			}

			modifiedFile := bytes.NewBuffer([]byte{})
			if err := r.Fprint(modifiedFile, file); err != nil {
				return err
			}

			f, err := os.OpenFile(m.diffFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
			if err != nil {
				return err
			}

			patch := godiffpatch.GeneratePatch(diffFileName, string(originalFile), modifiedFile.String())
			if _, err := f.WriteString(patch); err != nil {
				f.Close()
				return err
			}
			f.Close()
		}
	}
	log.Printf("changes written to %s", m.diffFile)
	return nil
}

// WriteInPlace overwrites the original source files with the generated
// changes instead of producing a diff.
func (m *GenerationManager) WriteInPlace() error {
	for _, state := range m.packages {
		r := decorator.NewRestorerWithImports(state.pkg.Dir, gopackages.New(state.pkg.Dir))

		for _, file := range state.pkg.Syntax {
			if !state.changed[file] {
				continue
			}

			path := state.pkg.Decorator.Filenames[file]
			modifiedFile := bytes.NewBuffer([]byte{})
			if err := r.Fprint(modifiedFile, file); err != nil {
				return err
			}

			info, err := os.Stat(path)
			if err != nil {
				return err
			}
			if err := os.WriteFile(path, modifiedFile.Bytes(), info.Mode().Perm()); err != nil {
				return err
			}
			log.Printf("wrote %s", path)
		}
	}
	return nil
}

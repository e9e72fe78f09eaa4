package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/dave/dst/decorator"
	"github.com/spf13/cobra"
	"golang.org/x/tools/go/packages"

	"github.com/structgen/go-struct-accessors/parser"
)

const (
	defaultPackageName    = "./..."
	defaultPackagePath    = ""
	defaultOutputFilePath = ""
	defaultDiffFileName   = "struct-accessors.diff"
	defaultWrite          = false
	defaultDebug          = false
)

var (
	debug       bool
	packagePath string
	diffFile    string
	writeFiles  bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "generate accessor methods",
	Long:  "generate accessor methods for struct fields tagged with the accessor key in existing application source files",
	Args:  cobra.ExactArgs(0),
	Run: func(cmd *cobra.Command, args []string) {
		Generate()
	},
}

// validateOutputFile checks that the custom output path is valid
func validateOutputFile(path string) error {
	if filepath.Ext(path) != ".diff" {
		return errors.New("output file must have a .diff extension")
	}

	_, err := os.Stat(filepath.Dir(path))
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("output file directory does not exist: %v", err)
	}

	return nil
}

// setOutputFilePath returns a complete output file path based on the provided
// diffFile flag value. If the flag is empty, the default path will be based
// on the applicationPath.
//
// This will fail if the packagePath is not valid, and must be run after
// validating it.
func setOutputFilePath(outputFilePath, applicationPath string) (string, error) {
	if outputFilePath == "" {
		outputFilePath = filepath.Join(applicationPath, defaultDiffFileName)
	}

	err := validateOutputFile(outputFilePath)
	if err != nil {
		return "", err
	}

	return outputFilePath, nil
}

func Generate() {
	if packagePath == "" {
		log.Fatal("--path is required")
	}

	if _, err := os.Stat(packagePath); err != nil {
		cobra.CheckErr(fmt.Errorf("--path \"%s\" is invalid: %v", packagePath, err))
	}

	pkgs, err := decorator.Load(&packages.Config{Dir: packagePath, Mode: packages.LoadSyntax}, defaultPackageName)
	if err != nil {
		log.Fatal(err)
	}

	if writeFiles {
		manager := parser.NewGenerationManager(pkgs, "", packagePath)
		if debug {
			manager.EnableDebug()
		}
		if err := manager.GenerateAccessors(); err != nil {
			log.Fatal(err)
		}
		if err := manager.WriteInPlace(); err != nil {
			log.Fatal(err)
		}
		return
	}

	outputFile, err := setOutputFilePath(diffFile, packagePath)
	if err != nil {
		cobra.CheckErr(err)
	}

	manager := parser.NewGenerationManager(pkgs, outputFile, packagePath)
	if debug {
		manager.EnableDebug()
	}

	if err := manager.CreateDiffFile(); err != nil {
		log.Fatal(err)
	}

	if err := manager.GenerateAccessors(); err != nil {
		log.Fatal(err)
	}

	if err := manager.WriteDiff(); err != nil {
		log.Fatal(err)
	}
}

func init() {
	generateCmd.Flags().BoolVar(&debug, "debug", defaultDebug, "enable debugging output")
	generateCmd.Flags().StringVar(&packagePath, "path", defaultPackagePath, "specify package path")
	generateCmd.Flags().StringVar(&diffFile, "diff", defaultOutputFilePath, "specify diff output file path")
	generateCmd.Flags().BoolVarP(&writeFiles, "write", "w", defaultWrite, "overwrite source files instead of writing a diff")
	cobra.MarkFlagFilename(generateCmd.Flags(), "diff", ".diff") // for file completion

	rootCmd.AddCommand(generateCmd)
}

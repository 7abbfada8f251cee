package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vehsim/vehsig/sig"
	"github.com/vehsim/vehsig/stubgen"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate stub sources and harness configuration from a catalog.",
	Long: "`generate` renders the component source, the .simudex " +
		"provide-port configuration, and the .simcon connection file " +
		"from a signal catalog. Without --catalog, the built-in VDY " +
		"catalog is used.",
	Run: func(cmd *cobra.Command, _ []string) {
		catalogPath, _ := cmd.Flags().GetString("catalog")
		outDir, _ := cmd.Flags().GetString("out")
		pkg, _ := cmd.Flags().GetString("package")
		importPath, _ := cmd.Flags().GetString("import")
		mainCall, _ := cmd.Flags().GetString("main-call")

		catalog := sig.VDY()
		if catalogPath != "" {
			var err error
			catalog, err = sig.LoadCatalog(catalogPath)
			if err != nil {
				log.Fatalf("Error loading catalog: %v", err)
			}
		}

		if pkg == "" {
			pkg = strings.ToLower(catalog.Component)
		}

		g := stubgen.Generator{
			Catalog:        catalog,
			Package:        pkg,
			ImportPath:     importPath,
			MainCallMethod: mainCall,
		}
		if err := g.WriteFiles(outDir); err != nil {
			log.Fatalf("Error generating stubs: %v", err)
		}

		fmt.Printf("Stubs for component '%s' generated in %s\n",
			catalog.Component, outDir)
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().String("catalog", "",
		"Path to a signal catalog YAML file")
	generateCmd.Flags().String("out", ".",
		"Directory to write the generated files to")
	generateCmd.Flags().String("package", "",
		"Go package name for the component source")
	generateCmd.Flags().String("import", "",
		"Import path of the component package; enables test case generation")
	generateCmd.Flags().String("main-call", "",
		"Bus conversion method name; enables main-call fragment generation")
}

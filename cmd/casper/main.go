// Package main is the entry point for the casper CLI, a thin driver
// over the evaluator core for running fixture trees end to end.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/caspercss/casper/pkg/env"
	"github.com/caspercss/casper/pkg/eval"
	"github.com/caspercss/casper/pkg/fixture"
	"github.com/caspercss/casper/pkg/function"
	"github.com/caspercss/casper/pkg/node"
	"github.com/caspercss/casper/pkg/selparse"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "casper",
	Short: "Casper stylesheet evaluator",
}

var evalCmd = &cobra.Command{
	Use:   "eval [fixture...]",
	Short: "Evaluate one or more fixture node trees and print the rewritten tree",
	RunE:  runEval,
}

func init() {
	rootCmd.Version = version + " (commit=" + commit + ", built=" + date + ")"
	rootCmd.SetVersionTemplate("casper version {{.Version}}\n")

	evalCmd.Flags().String("manifest", "", "casper.yaml build manifest listing fixtures (env CASPER_MANIFEST)")
	rootCmd.AddCommand(evalCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// manifest is the casper.yaml build manifest shape: a flat fixture list
// plus future function-registry options.
type manifest struct {
	Fixtures []string `yaml:"fixtures"`
}

func runEval(cmd *cobra.Command, args []string) error {
	paths := args

	manifestPath := envOrDefault("CASPER_MANIFEST", "")
	if v, _ := cmd.Flags().GetString("manifest"); v != "" {
		manifestPath = v
	}
	if manifestPath != "" {
		m, err := loadManifest(manifestPath)
		if err != nil {
			return err
		}
		log.Printf("loaded manifest %s with %d fixture(s)", manifestPath, len(m.Fixtures))
		paths = append(paths, m.Fixtures...)
	}

	if len(paths) == 0 {
		return fmt.Errorf("no fixtures given: pass fixture paths or --manifest")
	}

	factory := &node.Factory{}
	registry := function.NewRegistry()
	function.RegisterBuiltins(registry)
	reparser, err := selparse.NewCachingParser(selparse.DefaultCacheSize)
	if err != nil {
		return fmt.Errorf("building selector cache: %w", err)
	}
	ctx := &eval.Context{Factory: factory, Functions: registry, Reparser: reparser}

	for _, path := range paths {
		if err := evalFixture(path, factory, ctx); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	return nil
}

func evalFixture(path string, factory *node.Factory, ctx *eval.Context) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	tree, err := fixture.DecodeGroup(source, path, factory)
	if err != nil {
		return err
	}

	root := env.NewRoot()
	outer := factory.NewNone()
	result, err := eval.Eval(tree, outer, root, ctx)
	if err != nil {
		return err
	}
	log.Printf("evaluated %s (%d node allocations)", path, factory.Allocations())
	fmt.Println(result.String())
	return nil
}

func loadManifest(path string) (*manifest, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m manifest
	if err := yaml.Unmarshal(source, &m); err != nil {
		return nil, fmt.Errorf("invalid manifest %s: %w", path, err)
	}
	return &m, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

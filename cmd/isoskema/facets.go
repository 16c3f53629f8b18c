package main

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	iso "github.com/reoring/isoskema"
	js "github.com/reoring/isoskema/jsonschema"
	// The registry imports every message package, which declares its facets.
	_ "github.com/reoring/isoskema/registry"
)

var facetsFormat string

var facetsCmd = &cobra.Command{
	Use:   "facets",
	Short: "Print the constraints of every data type as JSON Schema",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := map[string]*js.Schema{}
		for _, f := range iso.Catalog() {
			out[f.Name()] = f.JSONSchema()
		}
		switch facetsFormat {
		case "json":
			b, err := json.MarshalIndent(out, "", "  ")
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return err
		case "yaml":
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(out); err != nil {
				return err
			}
			return enc.Close()
		default:
			return fmt.Errorf("unknown format %q (json, yaml)", facetsFormat)
		}
	},
}

func init() {
	facetsCmd.Flags().StringVarP(&facetsFormat, "format", "o", "json", "output format: json, yaml")
	rootCmd.AddCommand(facetsCmd)
}

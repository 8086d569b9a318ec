// buildcode - build-code codec CLI
//
// Usage:
//
//	buildcode --nodes nodes.yaml encode [build.json]   JSON build (stdin or file) -> code
//	buildcode --nodes nodes.yaml decode <code>         code -> JSON build
//	buildcode --nodes nodes.yaml check <code>...       validate codes, non-zero exit on failure
//
// The node definition file fixes branch membership and node positions, so
// the same file must be used to decode a code as was used to encode it.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Neumenon/buildcode/buildcode"
)

var nodesPath string

var rootCmd = &cobra.Command{
	Use:           "buildcode",
	Short:         "Encode and decode shareable skill-build codes",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "buildcode:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&nodesPath, "nodes", "nodes.yaml", "node definition file")
	rootCmd.AddCommand(encodeCmd, decodeCmd, checkCmd)
}

var encodeCmd = &cobra.Command{
	Use:   "encode [build.json]",
	Short: "Encode a JSON build as a build code",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		codec, err := buildcode.LoadNodeFile(nodesPath)
		if err != nil {
			return err
		}

		in := io.Reader(os.Stdin)
		if len(args) == 1 && args[0] != "-" {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			in = f
		}

		var b buildcode.Build
		if err := json.NewDecoder(in).Decode(&b); err != nil {
			return fmt.Errorf("read build: %w", err)
		}
		fmt.Println(codec.Encode(&b))
		return nil
	},
}

var decodeCmd = &cobra.Command{
	Use:   "decode <code>",
	Short: "Decode a build code to JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		codec, err := buildcode.LoadNodeFile(nodesPath)
		if err != nil {
			return err
		}
		b, err := codec.Decode(args[0])
		if err != nil {
			return err
		}
		out, err := json.MarshalIndent(b, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}

var checkCmd = &cobra.Command{
	Use:   "check <code>...",
	Short: "Check that codes decode cleanly",
	Long: "Check decodes each code with a strict codec: the node file is\n" +
		"refused if any node has no ancestry to a branch root, and every\n" +
		"malformed code is reported. Exits non-zero when anything fails.",
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(nodesPath)
		if err != nil {
			return err
		}
		defer f.Close()
		nf, err := buildcode.ReadNodeFile(f)
		if err != nil {
			return err
		}
		codec, err := buildcode.NewStrictCodec(nf.Nodes, nf.RootIDs())
		if err != nil {
			return err
		}

		bad := 0
		for _, code := range args {
			if !buildcode.ValidAlphabet(code) {
				fmt.Fprintf(os.Stderr, "%s: foreign characters\n", code)
				bad++
				continue
			}
			if _, err := codec.Decode(code); err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", code, err)
				bad++
				continue
			}
			fmt.Printf("%s: ok\n", code)
		}
		if bad > 0 {
			return fmt.Errorf("%d of %d codes invalid", bad, len(args))
		}
		return nil
	},
}

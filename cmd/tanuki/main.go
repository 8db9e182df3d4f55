// Tanuki - Java declaration to Go wrapper generator
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/chazu/tanuki/pkg/bridge"
	"github.com/chazu/tanuki/pkg/codegen"
	"github.com/chazu/tanuki/pkg/lexer"
	"github.com/chazu/tanuki/pkg/parser"
	"github.com/chazu/tanuki/pkg/resolver"
)

const versionStr = "0.1.0"

func main() {
	cmd := &cli.Command{
		Name:                   "tanuki",
		Usage:                  "Generate Go wrappers for Java class and interface declarations",
		Version:                versionStr,
		UseShortOptionHandling: true,
		Commands: []*cli.Command{
			{
				Name:      "generate",
				Usage:     "Generate wrapper source from a declaration file",
				ArgsUsage: "[file.java]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file (default stdout)",
					},
					&cli.StringFlag{
						Name:  "package",
						Usage: "Package name of the generated file",
						Value: codegen.DefaultPackage,
					},
					&cli.StringFlag{
						Name:  "bridge",
						Usage: "Import path of the runtime bridge package",
						Value: codegen.DefaultBridgePath,
					},
					&cli.BoolFlag{
						Name:  "dry-run",
						Usage: "Report what would be generated without writing output",
					},
				},
				Action: generateAction,
			},
			{
				Name:      "tokens",
				Usage:     "Dump the token stream of a declaration file as JSON",
				ArgsUsage: "[file.java]",
				Action:    tokensAction,
			},
			{
				Name:      "jvm",
				Usage:     "Probe the JVM shared library of a Java installation",
				ArgsUsage: "[java-home]",
				Action:    jvmAction,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// readInput reads the first positional argument as a file, or stdin when no
// argument is given.
func readInput(cmd *cli.Command) (string, error) {
	if cmd.NArg() > 0 {
		data, err := os.ReadFile(cmd.Args().First())
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func generateAction(ctx context.Context, cmd *cli.Command) error {
	input, err := readInput(cmd)
	if err != nil {
		return err
	}

	model, err := compile(input)
	if err != nil {
		return err
	}

	source, err := codegen.Generate(model, codegen.Options{
		Package: cmd.String("package"),
		Bridge:  cmd.String("bridge"),
	})
	if err != nil {
		return err
	}

	if cmd.Bool("dry-run") {
		classes, interfaces := 0, 0
		for _, def := range model.Definitions {
			if def.Class != nil {
				classes++
			} else {
				interfaces++
			}
		}
		fmt.Fprintf(os.Stderr, "tanuki: would generate %d classes, %d interfaces (%d bytes)\n",
			classes, interfaces, len(source))
		return nil
	}

	if output := cmd.String("output"); output != "" {
		return os.WriteFile(output, []byte(source), 0o644)
	}
	fmt.Print(source)
	return nil
}

func tokensAction(ctx context.Context, cmd *cli.Command) error {
	input, err := readInput(cmd)
	if err != nil {
		return err
	}

	out, err := lexer.New(input).TokenizeJSON()
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

func jvmAction(ctx context.Context, cmd *cli.Command) error {
	javaHome := cmd.Args().First()
	if javaHome == "" {
		javaHome = os.Getenv("JAVA_HOME")
	}
	if javaHome == "" {
		return fmt.Errorf("usage: tanuki jvm <java-home> (or set JAVA_HOME)")
	}

	jvm, err := bridge.LoadJVM(javaHome)
	if err != nil {
		return err
	}
	count, err := jvm.CreatedCount()
	if err != nil {
		return err
	}
	fmt.Printf("loaded %s (%d running VMs)\n", jvm.Path(), count)
	return nil
}

// compile runs the front half of the pipeline: tokens, declarations, model.
func compile(input string) (*resolver.Model, error) {
	tokens, err := lexer.New(input).Tokenize()
	if err != nil {
		return nil, err
	}
	defs, err := parser.Parse(tokens)
	if err != nil {
		return nil, err
	}
	return resolver.Resolve(defs)
}

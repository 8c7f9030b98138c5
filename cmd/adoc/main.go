// Copyright 2024 The Go AsciiDoc Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Command adoc converts an AsciiDoc file into HTML or a JSON AST dump
// (spec.md §6.2). The docx backend is accepted but fails with
// docx.ErrUnsupportedBackend.
package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	charmlog "charm.land/log/v2"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"go.adoc.dev/asciidoc"
	"go.adoc.dev/asciidoc/render/docx"
	htmlrender "go.adoc.dev/asciidoc/render/html"
	jsonrender "go.adoc.dev/asciidoc/render/json"
)

const version = "0.1.0"

var (
	// ErrReadInput indicates the source file or stdin could not be read.
	ErrReadInput = errors.New("read input")
	// ErrWriteOutput indicates the rendered output could not be written.
	ErrWriteOutput = errors.New("write output")
	// ErrUnknownBackend indicates an unrecognized --backend value.
	ErrUnknownBackend = errors.New("unknown backend")
)

type config struct {
	outFile string
	backend string
}

func main() {
	fs := afero.NewOsFs()
	logger := charmlog.New(os.Stderr)

	cfg := &config{backend: "htmlbook"}
	var showVersion bool

	rootCmd := &cobra.Command{
		Use:   "adoc FILE",
		Short: "Convert an AsciiDoc file to HTML or JSON",
		Args: func(cmd *cobra.Command, args []string) error {
			if showVersion {
				return nil
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(_ *cobra.Command, args []string) error {
			if showVersion {
				fmt.Println("adoc version " + version)
				return nil
			}
			return run(fs, logger, cfg, args[0])
		},
	}

	rootCmd.Flags().StringVarP(&cfg.outFile, "out-file", "o", "-", `output file ("-" for stdout)`)
	rootCmd.Flags().StringVarP(&cfg.backend, "backend", "b", "htmlbook", "output backend: htmlbook, docx, or json")
	rootCmd.Flags().BoolVarP(&showVersion, "version", "V", false, "print the version and exit")

	if err := rootCmd.Execute(); err != nil {
		logger.Error("adoc failed", "err", err)
		os.Exit(1)
	}
}

func run(fs afero.Fs, logger *charmlog.Logger, cfg *config, file string) error {
	src, err := readInput(fs, file)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrReadInput, err)
	}

	doc := asciidoc.Parse(src)
	for _, d := range doc.Diagnostics {
		if d.Severity == asciidoc.SeverityError {
			logger.Warn(d.String())
		} else {
			logger.Debug(d.String())
		}
	}

	out, err := renderDocument(cfg.backend, doc)
	if err != nil {
		return err
	}

	if err := writeOutput(fs, cfg.outFile, out); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	return nil
}

func readInput(fs afero.Fs, file string) ([]byte, error) {
	if file == "-" {
		return io.ReadAll(os.Stdin)
	}
	return afero.ReadFile(fs, file)
}

func renderDocument(backend string, doc *asciidoc.Document) ([]byte, error) {
	var buf bytes.Buffer
	var err error

	switch backend {
	case "htmlbook", "":
		err = (&htmlrender.Renderer{}).Render(&buf, doc)
	case "json":
		err = jsonrender.Render(&buf, doc)
	case "docx":
		err = docx.Render(&buf, doc)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}

	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeOutput(fs afero.Fs, outFile string, data []byte) error {
	if outFile == "" || outFile == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return afero.WriteFile(fs, outFile, data, 0o644)
}

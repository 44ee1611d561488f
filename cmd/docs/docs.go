// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"slices"
	"strings"

	cmd "dver.dev/x/dver/cmd/dver/cmd"
	"dver.dev/x/dver/pkg/assistant"
	"dver.dev/x/dver/pkg/assistantconfig"
	"dver.dev/x/dver/pkg/utils"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// docFormat is one output flavour of the reference
type docFormat struct {
	ext          string
	header       func(title string) string
	genTree      func(root *cobra.Command, dir string, prepend func(string) string) error
	writeSetting func(w io.Writer, rows []setting) error
	// writeIndex is optional
	writeIndex func(dir string) error
}

var formats = map[string]docFormat{
	"md": {
		ext:    ".md",
		header: frontMatter,
		genTree: func(root *cobra.Command, dir string, prepend func(string) string) error {
			return doc.GenMarkdownTreeCustom(root, dir, prepend, func(s string) string { return s })
		},
		writeSetting: writeSettingsMarkdown,
	},
	"rst": {
		ext:    ".rst",
		header: rstTitle,
		genTree: func(root *cobra.Command, dir string, prepend func(string) string) error {
			return doc.GenReSTTreeCustom(root, dir, prepend, func(name, ref string) string {
				return fmt.Sprintf(":ref:`%s <%s>`", name, ref)
			})
		},
		writeSetting: writeSettingsRst,
		writeIndex:   writeRstIndex,
	},
}

func main() {
	ctx, cancelFn := signal.NotifyContext(context.Background(), os.Interrupt, os.Kill)
	defer cancelFn()

	if err := getDocsCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func getDocsCmd() *cobra.Command {
	var formatName string

	docsCmd := &cobra.Command{
		Use:   "docs <output dir>",
		Short: "generate the dver CLI and configuration reference",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, ok := formats[formatName]
			if !ok {
				return fmt.Errorf("unsupported --format %q, expected one of %s", formatName, strings.Join(formatNames(), ", "))
			}

			cmd.SilenceUsage = true
			if err := genDocs(args[0], f); err != nil {
				return err
			}
			cmd.Printf("successfully generated at %s\n", args[0])
			return nil
		},
	}

	docsCmd.Flags().StringVar(&formatName, "format", "", "(required) "+strings.Join(formatNames(), " or "))
	_ = docsCmd.MarkFlagRequired("format")

	return docsCmd
}

func formatNames() []string {
	names := lo.Keys(formats)
	slices.Sort(names)
	return names
}

// genDocs writes one page per command plus the configuration page into dir
func genDocs(dir string, f docFormat) error {
	tmp, deleteFn, err := utils.MkdirTemp("", "")
	if err != nil {
		return err
	}
	defer func() { _ = deleteFn() }()

	// keep the user's dver-config.yaml out of the generated defaults
	if err := os.Setenv(assistantconfig.DverHomeEnvVar, tmp); err != nil {
		return err
	}

	root, err := cmd.RootCmd(&assistant.DotnetAssistant{OsArgs: []string{cmd.DverName}})
	if err != nil {
		return err
	}
	root.DisableAutoGenTag = true
	for _, c := range root.Commands() {
		c.Hidden = false
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	prepend := func(filename string) string {
		return f.header(pageTitle(filename))
	}
	if err := f.genTree(root, dir, prepend); err != nil {
		return err
	}
	if err := writeSettingsPage(dir, f); err != nil {
		return err
	}
	if f.writeIndex != nil {
		return f.writeIndex(dir)
	}
	return nil
}

func writeSettingsPage(dir string, f docFormat) error {
	path := filepath.Join(dir, settingsPage+f.ext)
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()

	if _, err := io.WriteString(out, f.header(pageTitle(path))); err != nil {
		return err
	}
	return f.writeSetting(out, settings)
}

// pageTitle turns ".../dver_remote_list.md" into "Dver Remote List"
func pageTitle(filename string) string {
	key := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	return cases.Title(language.English).String(strings.ReplaceAll(key, "_", " "))
}

func frontMatter(title string) string {
	return "---\nlayout: default\ntitle: " + title + "\nparent: CLI reference\n---\n\n"
}

func rstTitle(title string) string {
	return title + "\n" + strings.Repeat("=", len(title)) + "\n\n"
}

func writeRstIndex(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading %s: %w", dir, err)
	}
	pages := lo.FilterMap(entries, func(e os.DirEntry, _ int) (string, bool) {
		name := e.Name()
		return strings.TrimSuffix(name, ".rst"), filepath.Ext(name) == ".rst" && name != "index.rst"
	})

	var b strings.Builder
	b.WriteString(".. toctree::\n   :maxdepth: 2\n   :caption: dver reference:\n\n")
	for _, p := range pages {
		b.WriteString("   " + p + "\n")
	}
	return os.WriteFile(filepath.Join(dir, "index.rst"), []byte(b.String()), 0644)
}

package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/foliokit/templint/internal/domain/manifest"
)

func newInitCmd() *cobra.Command {
	var (
		templateType string
		force        bool
	)

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Scaffold a starter template manifest",
		Long:  "Create a minimal template.json plus sample content so the repository starts out as a passing template.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			if !manifest.IsTemplateType(templateType) {
				return fmt.Errorf("unknown template type %q (valid: json, markdown, hybrid)", templateType)
			}

			if !force {
				for _, name := range manifest.FileNames {
					if _, err := os.Stat(filepath.Join(absPath, name)); err == nil {
						return fmt.Errorf("%s already exists (use --force to overwrite)", name)
					}
				}
			}

			files := starterFiles(templateType)
			names := make([]string, 0, len(files))
			for rel := range files {
				names = append(names, rel)
			}
			sort.Strings(names)

			for _, rel := range names {
				content := files[rel]
				dest := filepath.Join(absPath, filepath.FromSlash(rel))
				if !force {
					if _, err := os.Stat(dest); err == nil {
						continue // never clobber existing content files
					}
				}
				if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
					return fmt.Errorf("creating %s: %w", filepath.Dir(rel), err)
				}
				if err := os.WriteFile(dest, []byte(content), 0644); err != nil {
					return fmt.Errorf("writing %s: %w", rel, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", rel)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "\nRun `templint validate` to check the result.")
			return nil
		},
	}

	cmd.Flags().StringVar(&templateType, "type", manifest.TypeJSON, "Template type (json, markdown, hybrid)")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing manifest")

	return cmd
}

const starterDataSchema = `{
      "path": "data.json",
      "documentType": "json",
      "schema": {
        "type": "object",
        "label": "Site",
        "fields": {
          "title": {"type": "string", "label": "Title", "required": true},
          "tagline": {"type": "text", "label": "Tagline"}
        }
      }
    }`

const starterPagesSchema = `{
      "path": "content/*.md",
      "documentType": "markdown",
      "schema": {
        "type": "object",
        "label": "Page",
        "fields": {
          "title": {"type": "string", "label": "Title", "required": true},
          "date": {"type": "date", "label": "Date"}
        }
      }
    }`

const starterData = `{
  "title": "My Portfolio",
  "tagline": "Work I am proud of"
}
`

const starterPage = `---
title: Hello
date: 2026-01-01
---

# Hello

This is a starter page. Edit it, add more files next to it, and the
template picks them all up.
`

const starterReadme = `# My Template

A starter FolioKit template. Edit the manifest, the content files, and
run ` + "`templint validate`" + ` to see how it scores.
`

// starterFiles maps repository-relative paths to starter content for
// the chosen template type.
func starterFiles(templateType string) map[string]string {
	files := map[string]string{
		"README.md": starterReadme,
	}

	var contentEntries string
	switch templateType {
	case manifest.TypeJSON:
		contentEntries = starterDataSchema
		files["data.json"] = starterData
	case manifest.TypeMarkdown:
		contentEntries = starterPagesSchema
		files["content/index.md"] = starterPage
	case manifest.TypeHybrid:
		contentEntries = starterDataSchema + ",\n    " + starterPagesSchema
		files["data.json"] = starterData
		files["content/index.md"] = starterPage
	}

	files["template.json"] = fmt.Sprintf(`{
  "version": "1.0.0",
  "name": "My Template",
  "description": "A starter FolioKit template",
  "templateType": %q,
  "contentFiles": [
    %s
  ]
}
`, templateType, contentEntries)

	return files
}

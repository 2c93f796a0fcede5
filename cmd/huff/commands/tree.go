// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/pflag"

	"github.com/bureau-foundation/huff/cmd/huff/cli"
	"github.com/bureau-foundation/huff/lib/huffman"
)

type treeParams struct {
	commonParams
	Raw bool `flag:"raw" desc:"build the tree from uncompressed input instead of reading an artifact"`
}

func treeCommand(env *Environment) *cli.Command {
	var params treeParams

	return &cli.Command{
		Name:    "tree",
		Summary: "Draw the code tree of an artifact",
		Description: `Draw the prefix tree described by an artifact's code table as an
indented outline. Each edge is labeled with its bit; leaves show the
byte they decode to. Branches a code table leaves empty (as in a
single-symbol artifact) are drawn as "missing".

With --raw, FILE is treated as uncompressed input and the tree is the
one compress would build for it.`,
		Usage: "huff tree FILE [flags]",
		Examples: []cli.Example{
			{
				Description: "Draw the tree of an artifact",
				Command:     "huff tree notes.txt.huff",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("tree", &params)
		},
		Run: func(ctx context.Context, args []string) error {
			if err := requireArgs("tree", args, 1, 1); err != nil {
				return err
			}
			return runTree(env, args[0], &params)
		},
	}
}

func runTree(env *Environment, path string, params *treeParams) error {
	_, logger, err := params.setup(env, "tree")
	if err != nil {
		return err
	}

	data, err := readInput(env, path)
	if err != nil {
		return err
	}

	var tree *huffman.Tree
	if params.Raw {
		tree = huffman.BuildTree(huffman.CountFrequencies(data))
	} else {
		artifact, err := huffman.ParseArtifact(data)
		if err != nil {
			return cli.Corrupt("reading %s: %w", path, err)
		}
		tree, err = huffman.TreeFromCodes(artifact.Table)
		if err != nil {
			return cli.Corrupt("rebuilding tree for %s: %w", path, err)
		}
	}

	if err := newTreeStyles(env.Stdout).render(env.Stdout, tree); err != nil {
		return cli.Internal("writing tree: %w", err)
	}
	logger.Debug("rendered tree",
		"input", path,
		"leaves", tree.LeafCount(),
		"depth", tree.Depth(),
	)
	return nil
}

// treeStyles holds the lipgloss styles for the outline. Colors are
// dropped entirely when the output is not a terminal.
type treeStyles struct {
	branch  lipgloss.Style
	bit     lipgloss.Style
	leaf    lipgloss.Style
	missing lipgloss.Style
}

func newTreeStyles(w io.Writer) treeStyles {
	profile := termenv.Ascii
	if cli.IsTerminal(w) {
		profile = termenv.ANSI256
	}
	// SetColorProfile is needed as well: the renderer otherwise
	// re-detects the profile from the writer.
	renderer := lipgloss.NewRenderer(w, termenv.WithProfile(profile))
	renderer.SetColorProfile(profile)

	return treeStyles{
		branch:  renderer.NewStyle().Foreground(lipgloss.Color("240")),
		bit:     renderer.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
		leaf:    renderer.NewStyle().Foreground(lipgloss.Color("76")),
		missing: renderer.NewStyle().Foreground(lipgloss.Color("196")).Italic(true),
	}
}

// render writes tree as an outline, visiting the 0 branch before the 1
// branch. The walk is iterative so degenerate trees of depth 255 do
// not grow the goroutine stack.
func (s treeStyles) render(w io.Writer, tree *huffman.Tree) error {
	root := tree.Root()
	if root == huffman.NoNode {
		_, err := fmt.Fprintln(w, "(empty)")
		return err
	}

	type frame struct {
		id     huffman.NodeID
		bit    byte
		prefix string
		last   bool
		isRoot bool
	}

	var out strings.Builder
	stack := []frame{{id: root, isRoot: true}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		childPrefix := ""
		if !top.isRoot {
			connector, continuation := "├──", s.branch.Render("│")+"   "
			if top.last {
				connector, continuation = "└──", "    "
			}
			out.WriteString(top.prefix)
			out.WriteString(s.branch.Render(connector))
			out.WriteByte(' ')
			out.WriteString(s.bit.Render(fmt.Sprintf("%d", top.bit)))
			out.WriteByte(' ')
			childPrefix = top.prefix + continuation
		}

		switch {
		case top.id == huffman.NoNode:
			out.WriteString(s.missing.Render("missing"))
		case tree.IsLeaf(top.id):
			value, _ := tree.Value(top.id)
			out.WriteString(s.leaf.Render(huffman.SymbolLabel(value)))
		default:
			out.WriteString(s.branch.Render("•"))
			// Pushed in reverse so the 0 branch is drawn first.
			stack = append(stack,
				frame{id: tree.Child(top.id, 1), bit: 1, prefix: childPrefix, last: true},
				frame{id: tree.Child(top.id, 0), bit: 0, prefix: childPrefix},
			)
		}
		out.WriteByte('\n')
	}

	_, err := io.WriteString(w, out.String())
	return err
}

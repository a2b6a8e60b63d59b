package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/tabwriter"

	"go.uber.org/zap"

	"github.com/Faultbox/pure3d/pkg/p3d"
	"github.com/Faultbox/pure3d/pkg/scene"
	"github.com/Faultbox/pure3d/pkg/texture"
)

// InfoCmd summarises one file.
type InfoCmd struct {
	File string `arg:"" help:"Pure3D file (.p3d or .p3d.xz)" type:"existingfile"`
	All  bool   `help:"List every kind, not just the common ones"`
}

func (c *InfoCmd) Run(a *app) error {
	f, ft, err := a.open(c.File)
	if err != nil {
		return err
	}

	counts := make(map[p3d.Kind]int)
	unknown := 0
	for i := 0; i < f.Len(); i++ {
		ch := f.Chunk(i)
		counts[ch.Kind]++
		if _, ok := ch.Payload.(*p3d.Unknown); ok {
			unknown++
		}
	}

	fmt.Printf("File:    %s\n", c.File)
	fmt.Printf("Variant: %v\n", ft)
	fmt.Printf("Records: %d\n", f.Len())
	fmt.Printf("Unknown: %d\n", unknown)
	fmt.Println()
	fmt.Println("Records by kind:")

	type kindStat struct {
		kind  p3d.Kind
		count int
	}
	var stats []kindStat
	for k, n := range counts {
		stats = append(stats, kindStat{k, n})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].count != stats[j].count {
			return stats[i].count > stats[j].count
		}
		return stats[i].kind < stats[j].kind
	})

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, s := range stats {
		if !c.All && s.count < 2 && len(stats) > 20 {
			continue
		}
		fmt.Fprintf(w, "  %v\t%d\n", s.kind, s.count)
	}
	return w.Flush()
}

// TreeCmd prints the chunk hierarchy.
type TreeCmd struct {
	File    string `arg:"" help:"Pure3D file (.p3d or .p3d.xz)" type:"existingfile"`
	Depth   int    `short:"d" help:"Maximum depth to print (0 = all)"`
	Offsets bool   `help:"Show each record's file offset"`
}

func (c *TreeCmd) Run(a *app) error {
	f, _, err := a.open(c.File)
	if err != nil {
		return err
	}
	root, err := f.Root()
	if err != nil {
		return err
	}

	f.Walk(root, func(i, depth int) bool {
		if c.Depth > 0 && depth >= c.Depth {
			return false
		}
		fmt.Println(strings.Repeat("  ", depth) + describe(f, i, c.Offsets))
		return true
	})
	return nil
}

// describe renders one record as "Kind name [children]".
func describe(f *p3d.Forest, i int, offsets bool) string {
	ch := f.Chunk(i)
	var b strings.Builder
	if offsets {
		fmt.Fprintf(&b, "0x%08X ", ch.Offset)
	}
	b.WriteString(ch.Kind.String())
	if name, ok := p3d.NameOf(ch.Payload); ok && name != "" {
		fmt.Fprintf(&b, " %q", name)
	}
	if u, ok := ch.Payload.(*p3d.Unknown); ok {
		fmt.Fprintf(&b, " <%d bytes undecoded>", len(u.Data))
		if u.Err != nil {
			fmt.Fprintf(&b, " (%v)", u.Err)
		}
	}
	if n := len(ch.Children); n > 0 {
		fmt.Fprintf(&b, " [%d]", n)
	}
	return b.String()
}

// ObjectsCmd lists reconstructed objects.
type ObjectsCmd struct {
	File   string `arg:"" help:"Pure3D file (.p3d or .p3d.xz)" type:"existingfile"`
	Joints bool   `help:"Print every joint's world position"`
}

func (c *ObjectsCmd) Run(a *app) error {
	f, _, err := a.open(c.File)
	if err != nil {
		return err
	}
	objs, err := scene.Build(f, scene.WithLogger(a.log.Named("scene")))
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TYPE\tNAME\tGROUPS\tVERTICES\tSHADERS\tTEXTURES\tSKELETON")
	for _, o := range objs {
		switch v := o.(type) {
		case *scene.Mesh:
			fmt.Fprintf(w, "mesh\t%s\t%d\t%d\t%s\t%s\t-\n",
				v.Name, len(v.PrimGroups), vertexCount(v.PrimGroups), shaderNames(v.Shaders), textureNames(v.Textures))
		case *scene.Skin:
			skel := v.SkeletonName + " (missing)"
			if v.Skeleton != nil {
				skel = fmt.Sprintf("%s (%d joints)", v.Skeleton.Name, len(v.Skeleton.Joints))
			}
			fmt.Fprintf(w, "skin\t%s\t%d\t%d\t%s\t%s\t%s\n",
				v.Name, len(v.PrimGroups), vertexCount(v.PrimGroups), shaderNames(v.Shaders), textureNames(v.Textures), skel)
		case *scene.TextureCatalogue:
			fmt.Fprintf(w, "textures\t-\t-\t-\t-\t%d\t-\n", len(v.Textures))
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}

	for _, i := range f.OfKind(p3d.KindP3DSkeleton) {
		s, err := scene.BuildSkeleton(f, i)
		if err != nil {
			a.log.Warn("skeleton rejected", zap.String("lineage", f.Lineage(i)), zap.Error(err))
			continue
		}
		fmt.Printf("\nSkeleton %s: %d joints\n", s.Name, len(s.Joints))
		if !c.Joints {
			continue
		}
		for j, joint := range s.Joints {
			t := joint.World.Translation()
			fmt.Printf("  %3d %-24s parent %3d  world (%.3f, %.3f, %.3f)\n", j, joint.Name, joint.Parent, t.X, t.Y, t.Z)
		}
	}
	return nil
}

func vertexCount(groups []scene.PrimGroup) int {
	n := 0
	for _, g := range groups {
		n += len(g.Positions)
	}
	return n
}

func shaderNames(shaders []*scene.Shader) string {
	names := make([]string, len(shaders))
	for i, s := range shaders {
		names[i] = s.Name
	}
	return joinOrDash(names)
}

func textureNames(textures []*scene.Texture) string {
	names := make([]string, len(textures))
	for i, t := range textures {
		names[i] = t.Name
	}
	return joinOrDash(names)
}

func joinOrDash(names []string) string {
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, ",")
}

// TexturesCmd lists the texture catalogue.
type TexturesCmd struct {
	File    string `arg:"" help:"Pure3D file (.p3d or .p3d.xz)" type:"existingfile"`
	Extract string `short:"x" help:"Write each texture's image bytes into this directory" type:"path"`
}

func (c *TexturesCmd) Run(a *app) error {
	f, _, err := a.open(c.File)
	if err != nil {
		return err
	}
	objs, err := scene.Build(f, scene.WithLogger(a.log.Named("scene")))
	if err != nil {
		return err
	}

	var cat *scene.TextureCatalogue
	for _, o := range objs {
		if v, ok := o.(*scene.TextureCatalogue); ok {
			cat = v
		}
	}
	if cat == nil || len(cat.Textures) == 0 {
		fmt.Fprintln(os.Stderr, "No textures found")
		return nil
	}

	if c.Extract != "" {
		if err := os.MkdirAll(c.Extract, 0755); err != nil {
			return fmt.Errorf("creating directory: %w", err)
		}
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tFORMAT\tDECLARED\tDECODED\tBYTES\tDIGEST")
	for _, t := range cat.Textures {
		info, err := texture.Inspect(t.Format, t.Data)
		decoded := "-"
		switch {
		case err == nil:
			decoded = fmt.Sprintf("%dx%d %s", info.Width, info.Height, info.Model)
			if !info.Matches(t.Width, t.Height) {
				decoded += " (size mismatch)"
			}
		case !errors.Is(err, texture.ErrNoDecoder):
			decoded = "invalid"
			a.log.Warn("texture does not decode", zap.String("texture", t.Name), zap.Error(err))
		}
		fmt.Fprintf(w, "%s\t%v\t%dx%d\t%s\t%d\t%s\n",
			t.Name, t.Format, t.Width, t.Height, decoded, info.Size, info.Digest)

		if c.Extract != "" {
			if err := extractTexture(c.Extract, t); err != nil {
				return err
			}
		}
	}
	return w.Flush()
}

func extractTexture(dir string, t *scene.Texture) error {
	ext := t.Format.Extension()
	if ext == "" {
		ext = "bin"
	}
	name := strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || r == ':' {
			return '_'
		}
		return r
	}, t.Name)
	path := filepath.Join(dir, name+"."+ext)
	if err := os.WriteFile(path, t.Data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	fmt.Fprintf(os.Stderr, "Extracted: %s (%d bytes)\n", path, len(t.Data))
	return nil
}

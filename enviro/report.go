package enviro

import (
	"fmt"
	"io"
)

// Fetch samples every sensor group and writes the munin value report:
// seven multigraph blocks, one value line per field, blank line after
// each block.
func (p *Plugin) Fetch(w io.Writer) error {
	data, err := p.collect()
	if err != nil {
		return err
	}
	for _, g := range graphs {
		fmt.Fprintf(w, "multigraph enviro_%s\n", g.name)
		for _, f := range g.fields {
			fmt.Fprintf(w, "%s.value %.8f\n", f.key, data[f.key])
		}
		fmt.Fprintln(w)
	}
	return nil
}

// Config writes the munin discovery blocks. When dirty is set (munin
// announced MUNIN_CAP_DIRTYCONFIG) values are expected in the same
// invocation, so a full Fetch pass follows the config output.
func (p *Plugin) Config(w io.Writer, dirty bool) error {
	for _, g := range graphs {
		fmt.Fprintf(w, "multigraph enviro_%s\n", g.name)
		fmt.Fprintf(w, "graph_title %s\n", g.title)
		fmt.Fprintf(w, "graph_vlabel %s\n", g.vlabel)
		fmt.Fprintln(w, "graph_category environment")
		fmt.Fprintln(w, "graph_args --base 1000 --lower-limit 0")
		for _, f := range g.fields {
			fmt.Fprintf(w, "%s.label %s\n", f.key, f.label)
		}
		fmt.Fprintln(w)
	}
	if dirty {
		return p.Fetch(w)
	}
	return nil
}

// Autoconf answers munin's capability probe. It must not touch hardware.
func Autoconf(w io.Writer) {
	fmt.Fprintln(w, "yes")
}

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/columns/internal/core"
	"github.com/vovakirdan/columns/internal/games/columns"
	"github.com/vovakirdan/columns/internal/platform/tui"
	"github.com/vovakirdan/columns/internal/registry"
	"github.com/vovakirdan/columns/internal/render"
	"github.com/vovakirdan/columns/internal/render/charset"
)

var (
	flagTicks int
	flagDrop  bool
	flagYAML  bool
	flagASCII bool
)

var frameCmd = &cobra.Command{
	Use:   "frame [game]",
	Short: "Simulate headlessly and describe the resulting frame",
	Long: `Run the game for --ticks ticks without a display, then render one frame
into a recording device and print its draw calls.

With the same --seed the output is identical on every run.

Examples:
  columns frame --seed 42 --ticks 600
  columns frame --seed 42 --ticks 600 --drop --ascii
  columns frame columns_classic --seed 7 --yaml > frame.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFrame,
}

func init() {
	frameCmd.Flags().IntVar(&flagTicks, "ticks", 300, "Number of ticks to simulate")
	frameCmd.Flags().BoolVar(&flagDrop, "drop", false, "Hold soft drop on every tick")
	frameCmd.Flags().BoolVar(&flagYAML, "yaml", false, "Dump every recorded vertex as YAML")
	frameCmd.Flags().BoolVar(&flagASCII, "ascii", false, "Print the frame as rasterized by the terminal front end")
}

// frameDump is the YAML form of a recorded frame.
type frameDump struct {
	Game  string     `yaml:"game"`
	Seed  int64      `yaml:"seed"`
	Tick  uint64     `yaml:"tick"`
	Phase string     `yaml:"phase"`
	Score int        `yaml:"score"`
	Hash  uint64     `yaml:"hash"`
	Calls []callDump `yaml:"calls"`
}

type callDump struct {
	Texture  string       `yaml:"texture"`
	Quads    int          `yaml:"quads"`
	Vertices []vertexDump `yaml:"vertices,omitempty"`
}

type vertexDump struct {
	Pos   [2]float32 `yaml:"pos,flow"`
	UV    [2]float32 `yaml:"uv,flow"`
	Color [4]float32 `yaml:"color,flow"`
}

func runFrame(_ *cobra.Command, args []string) error {
	game, err := gameArg(args)
	if err != nil {
		return err
	}

	simulate(game, runtimeConfig(0, 0), flagTicks, flagDrop)

	if flagASCII {
		return printASCII(os.Stdout, game)
	}

	rec := &render.Recorder{}
	ctx, err := appConfig.RenderContext(rec, charset.New())
	if err != nil {
		return err
	}
	render.Clear(rec)
	render.NewRenderer().Draw(ctx, game.Frame())

	dump := dumpFrame(game, rec, flagYAML)
	if flagYAML {
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(dump)
	}
	printSummary(os.Stdout, dump)
	return nil
}

// simulate resets game and steps it ticks times.
func simulate(game registry.Game, rc core.RuntimeConfig, ticks int, drop bool) {
	game.Reset(rc)
	for range ticks {
		in := core.NewInputFrame()
		if drop {
			in.Set(core.ActionDrop)
		}
		if game.Step(in).State.GameOver {
			break
		}
	}
	logger.Debug("simulated", "game", game.ID(), "ticks", ticks, "score", game.State().Score)
}

// dumpFrame describes the recorded calls, with vertices when full is set.
func dumpFrame(game registry.Game, rec *render.Recorder, full bool) frameDump {
	d := frameDump{
		Game:  game.ID(),
		Seed:  flagSeed,
		Score: game.State().Score,
	}
	if g, ok := game.(*columns.Game); ok {
		snap := g.Snapshot()
		d.Tick = snap.Tick
		d.Phase = snap.Phase
		d.Hash = snap.Hash()
	}

	for _, c := range rec.Calls {
		cd := callDump{Texture: c.Texture.String(), Quads: c.Vertices.QuadCount()}
		if full {
			for _, v := range c.Vertices {
				cd.Vertices = append(cd.Vertices, vertexDump{
					Pos:   [2]float32(v.Position),
					UV:    [2]float32(v.TexCoord),
					Color: [4]float32(v.Color),
				})
			}
		}
		d.Calls = append(d.Calls, cd)
	}
	return d
}

func printSummary(w io.Writer, d frameDump) {
	fmt.Fprintf(w, "%s seed=%d tick=%d phase=%s score=%d hash=%016x\n", d.Game, d.Seed, d.Tick, d.Phase, d.Score, d.Hash)
	for i, c := range d.Calls {
		fmt.Fprintf(w, "  draw %d: %-8s %4d quads %5d vertices\n", i+1, c.Texture, c.Quads, c.Quads*render.VerticesPerQuad)
	}
}

// printASCII rasterizes the game's frame the way the terminal front end does.
func printASCII(w io.Writer, game registry.Game) error {
	term := appConfig.Terminal
	win := appConfig.Layout.Window
	screen := core.NewScreen(term.Columns(win), term.Rows(win))
	dev := tui.NewDevice(screen, appConfig.WindowRect(), term.CellWidth, term.CellHeight)

	ctx, err := appConfig.RenderContext(dev, charset.New())
	if err != nil {
		return err
	}
	render.Clear(dev)
	render.DrawGame(ctx, game.Frame())

	_, err = fmt.Fprintln(w, screen.String())
	return err
}

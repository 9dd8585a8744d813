package main

import (
	"fmt"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/urfave/cli/v2"
	"github.com/xfmoulet/qoi"

	"github.com/bodgit/bitmap16dx"
	"github.com/bodgit/bitmap16dx/prefs"
	"github.com/bodgit/bitmap16dx/storage"
)

const defaultDB = "bitmap16dx.db"

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

// newSession wires a device session from the global flags. The caller
// closes the returned store.
func newSession(c *cli.Context) (*bitmap16dx.DX, *prefs.Store, error) {
	logger := hclog.NewNullLogger()
	if c.Bool("verbose") {
		logger = hclog.New(&hclog.LoggerOptions{
			Name:  "bitmap16dx",
			Level: hclog.Debug,
		})
	}

	store, err := prefs.NewStore(c.String("db"))
	if err != nil {
		return nil, nil, err
	}

	card := storage.NewDir(c.String("card"))

	return bitmap16dx.NewWithLogger(card, store, logger), store, nil
}

func main() {
	app := cli.NewApp()

	app.Name = "bitmap16dx"
	app.Usage = "BitMap16 DX sketch management utility"
	app.Version = "1.0.0"

	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "card",
			EnvVars: []string{"BITMAP16DX_CARD"},
			Value:   cwd,
			Usage:   "path to the card root",
		},
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"BITMAP16DX_DB"},
			Value:   filepath.Join(cwd, defaultDB),
			Usage:   "path to the preference database",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:  "list",
			Usage: "List the sketches on the card, newest first",
			Action: func(c *cli.Context) error {
				d, store, err := newSession(c)
				if err != nil {
					return cli.Exit(err, 1)
				}
				defer store.Close()

				sketches, err := d.Sketches()
				if err != nil {
					return cli.Exit(err, 1)
				}

				for _, s := range sketches {
					fmt.Printf("%s\t%s\n", s.Name, s.ModTime.Format("2006-01-02 15:04:05"))
				}

				return nil
			},
		},
		{
			Name:  "new",
			Usage: "Create a blank sketch on the card",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "palette",
					Usage: "palette to start from",
				},
			},
			Action: func(c *cli.Context) error {
				d, store, err := newSession(c)
				if err != nil {
					return cli.Exit(err, 1)
				}
				defer store.Close()

				if name := c.String("palette"); name != "" {
					if _, _, err := d.LoadCatalog(); err != nil {
						return cli.Exit(err, 1)
					}
					if err := d.ApplyPalette(name); err != nil {
						return cli.Exit(err, 1)
					}
				}

				name, err := d.Save()
				if err != nil {
					return cli.Exit(err, 1)
				}

				fmt.Println(name)
				return nil
			},
		},
		{
			Name:      "export",
			Usage:     "Export a sketch as a PNG on the card",
			ArgsUsage: "FILE",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  "scale",
					Usage: "scale up to the 128 pixel preview size",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				d, store, err := newSession(c)
				if err != nil {
					return cli.Exit(err, 1)
				}
				defer store.Close()

				if err := d.Open(c.Args().First()); err != nil {
					return cli.Exit(err, 1)
				}

				name, size, err := d.ExportCanvas(c.Bool("scale"))
				if err != nil {
					return cli.Exit(err, 1)
				}

				fmt.Printf("%s\t%d bytes\n", name, size)
				return nil
			},
		},
		{
			Name:      "render",
			Usage:     "Render a sketch to a local PNG or QOI image",
			ArgsUsage: "FILE OUTPUT",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "factor",
					Value: 8,
					Usage: "integer scale factor",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				d, store, err := newSession(c)
				if err != nil {
					return cli.Exit(err, 1)
				}
				defer store.Close()

				if err := d.Open(c.Args().First()); err != nil {
					return cli.Exit(err, 1)
				}

				m := d.Sketch().Image(c.Int("factor"))

				out := c.Args().Get(1)
				f, err := os.Create(out)
				if err != nil {
					return cli.Exit(err, 1)
				}
				defer f.Close()

				switch strings.ToLower(filepath.Ext(out)) {
				case ".qoi":
					err = qoi.Encode(f, m)
				default:
					err = png.Encode(f, m)
				}
				if err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
		{
			Name:      "import",
			Usage:     "Import an image as a new sketch on the card",
			ArgsUsage: "IMAGE",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "grid",
					Value: 16,
					Usage: "grid size, 8 or 16",
				},
				&cli.IntFlag{
					Name:  "colors",
					Value: 16,
					Usage: "palette size, 4, 8 or 16",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				d, store, err := newSession(c)
				if err != nil {
					return cli.Exit(err, 1)
				}
				defer store.Close()

				f, err := os.Open(c.Args().First())
				if err != nil {
					return cli.Exit(err, 1)
				}
				defer f.Close()

				if err := d.ImportImage(f, c.Int("grid"), c.Int("colors")); err != nil {
					return cli.Exit(err, 1)
				}

				name, err := d.Save()
				if err != nil {
					return cli.Exit(err, 1)
				}

				fmt.Println(name)
				return nil
			},
		},
		{
			Name:  "palettes",
			Usage: "List the palette catalog, including user palettes on the card",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "size",
					Usage: "only palettes with this many colors",
				},
				&cli.BoolFlag{
					Name:  "user",
					Usage: "only palettes loaded from the card",
				},
			},
			Action: func(c *cli.Context) error {
				d, store, err := newSession(c)
				if err != nil {
					return cli.Exit(err, 1)
				}
				defer store.Close()

				if _, _, err := d.LoadCatalog(); err != nil {
					return cli.Exit(err, 1)
				}

				for _, p := range d.Catalog().Filter(c.Int("size"), c.Bool("user")) {
					origin := "builtin"
					if p.User {
						origin = "user"
					}
					fmt.Printf("%s\t%d\t%s\n", p.Name, p.Size, origin)
				}

				return nil
			},
		},
		{
			Name:      "delete",
			Usage:     "Delete a sketch from the card",
			ArgsUsage: "FILE",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				d, store, err := newSession(c)
				if err != nil {
					return cli.Exit(err, 1)
				}
				defer store.Close()

				if err := d.Delete(c.Args().First()); err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

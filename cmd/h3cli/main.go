// Command h3cli is the text-command driver over the h3grid library:
// reads index or coordinate arguments, prints results, and exits
// non-zero on malformed input.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/gravitas-015/h3grid"
	"github.com/gravitas-015/h3grid/internal/config"
)

func main() {
	log.SetFlags(0)

	configPath := os.Getenv("H3GRID_CONFIG")
	var cfg *config.Config
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			log.Fatalf("h3cli: %v", err)
		}
		cfg = loaded
	} else {
		cfg = config.Default()
	}

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "geoToH3":
		err = cmdGeoToCell(args, cfg)
	case "h3ToGeo":
		err = cmdCellToGeo(args)
	case "h3ToGeoBoundary":
		err = cmdCellToBoundary(args)
	case "kRing":
		err = cmdKRing(args)
	case "h3Line":
		err = cmdLine(args)
	case "compact":
		err = cmdCompact()
	case "uncompact":
		err = cmdUncompact(args)
	case "polyfill":
		err = cmdPolyfill(args)
	default:
		usage()
		os.Exit(1)
	}

	if err != nil {
		log.Printf("h3cli: %v", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: h3cli <geoToH3|h3ToGeo|h3ToGeoBoundary|kRing|h3Line|compact|uncompact|polyfill> [args]")
}

func cmdGeoToCell(args []string, cfg *config.Config) error {
	fs := flag.NewFlagSet("geoToH3", flag.ContinueOnError)
	res := fs.Int("res", cfg.Default.Resolution, "resolution")
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) != 2 {
		return fmt.Errorf("geoToH3: expected <lat> <lon>")
	}
	lat, err := strconv.ParseFloat(rest[0], 64)
	if err != nil {
		return fmt.Errorf("geoToH3: bad latitude: %w", err)
	}
	lon, err := strconv.ParseFloat(rest[1], 64)
	if err != nil {
		return fmt.Errorf("geoToH3: bad longitude: %w", err)
	}

	h, err := h3grid.GeoToCell(h3grid.GeoCoord{Lat: deg2rad(lat), Lon: deg2rad(lon)}, *res)
	if err != nil {
		return err
	}
	fmt.Println(h.String())
	return nil
}

func cmdCellToGeo(args []string) error {
	return withEachIndex(args, func(h h3grid.Index) error {
		g, err := h.Geo()
		if err != nil {
			return err
		}
		fmt.Printf("%.6f %.6f\n", rad2deg(g.Lat), rad2deg(g.Lon))
		return nil
	})
}

func cmdCellToBoundary(args []string) error {
	return withEachIndex(args, func(h h3grid.Index) error {
		b, err := h.GeoBoundaryFor()
		if err != nil {
			return err
		}
		var parts []string
		for _, v := range b.Verts {
			parts = append(parts, fmt.Sprintf("%.6f,%.6f", rad2deg(v.Lat), rad2deg(v.Lon)))
		}
		fmt.Println(strings.Join(parts, " "))
		return nil
	})
}

func cmdKRing(args []string) error {
	fs := flag.NewFlagSet("kRing", flag.ContinueOnError)
	k := fs.Int("k", 1, "ring radius")
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) != 1 {
		return fmt.Errorf("kRing: expected <index>")
	}
	origin, err := h3grid.ParseIndex(rest[0])
	if err != nil {
		return err
	}
	cells, err := h3grid.KRing(origin, *k)
	if err != nil {
		return err
	}
	for _, c := range cells {
		fmt.Println(c.String())
	}
	return nil
}

func cmdLine(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("h3Line: expected <fromIndex> <toIndex>")
	}
	a, err := h3grid.ParseIndex(args[0])
	if err != nil {
		return err
	}
	b, err := h3grid.ParseIndex(args[1])
	if err != nil {
		return err
	}
	line, err := h3grid.Line(a, b)
	if err != nil {
		return err
	}
	for _, c := range line {
		fmt.Println(c.String())
	}
	return nil
}

func cmdCompact() error {
	set, err := readIndexList(os.Stdin)
	if err != nil {
		return err
	}
	out, err := h3grid.Compact(set)
	if err != nil {
		return err
	}
	for _, c := range out {
		fmt.Println(c.String())
	}
	return nil
}

func cmdUncompact(args []string) error {
	fs := flag.NewFlagSet("uncompact", flag.ContinueOnError)
	res := fs.Int("res", 0, "target resolution")
	if err := fs.Parse(args); err != nil {
		return err
	}
	set, err := readIndexList(os.Stdin)
	if err != nil {
		return err
	}
	out, err := h3grid.Uncompact(set, *res)
	if err != nil {
		return err
	}
	for _, c := range out {
		fmt.Println(c.String())
	}
	return nil
}

func cmdPolyfill(args []string) error {
	fs := flag.NewFlagSet("polyfill", flag.ContinueOnError)
	res := fs.Int("res", 9, "resolution")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var outer []h3grid.GeoCoord
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		parts := strings.Split(line, ",")
		if len(parts) != 2 {
			return fmt.Errorf("polyfill: bad vertex line %q", line)
		}
		lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		if err != nil {
			return err
		}
		lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return err
		}
		outer = append(outer, h3grid.GeoCoord{Lat: deg2rad(lat), Lon: deg2rad(lon)})
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	cells, err := h3grid.PolygonToCells(h3grid.Polygon{Outer: outer}, *res)
	if err != nil {
		return err
	}
	for _, c := range cells {
		fmt.Println(c.String())
	}
	return nil
}

func withEachIndex(args []string, f func(h3grid.Index) error) error {
	if len(args) != 1 {
		return fmt.Errorf("expected exactly one index argument")
	}
	h, err := h3grid.ParseIndex(args[0])
	if err != nil {
		return err
	}
	return f(h)
}

func readIndexList(f *os.File) ([]h3grid.Index, error) {
	var out []h3grid.Index
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		h, err := h3grid.ParseIndex(line)
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, scanner.Err()
}

func deg2rad(d float64) float64 { return d * 3.141592653589793 / 180.0 }
func rad2deg(r float64) float64 { return r * 180.0 / 3.141592653589793 }

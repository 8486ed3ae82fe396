package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Forrest-Z/motion-planning-in-ROS/geom"
	"github.com/Forrest-Z/motion-planning-in-ROS/gridmap"
	"github.com/Forrest-Z/motion-planning-in-ROS/metrics"
	"github.com/Forrest-Z/motion-planning-in-ROS/planner"
)

// CLI is the planroute command line, parsed by kong. The map file is a
// plain text grid: '.' free, '#' blocked, 'S' the single start cell, 'G'
// the single goal cell.
var CLI struct {
	Map      string  `arg:"" name:"map" help:"Path to a text occupancy map." type:"path"`
	Algo     string  `name:"algo" help:"Planner to run." enum:"astar,thetastar,lpastar,dstarlite" default:"astar"`
	Conn8    bool    `name:"conn8" help:"Use 8-connected grid instead of 4-connected." default:"true"`
	CellSize float64 `name:"cell-size" help:"World units per grid cell." default:"1.0"`
	Buffer   float64 `name:"buffer" help:"Theta* obstacle inflation radius." default:"0.05"`
	Verbose  bool    `name:"verbose" short:"v" help:"Enable debug logging."`
}

func main() {
	kong.Parse(&CLI)

	if CLI.Verbose {
		log.SetLevel(log.DebugLevel)
	}

	f, err := os.Open(CLI.Map)
	if err != nil {
		log.Fatal("failed to open map", "err", err)
	}
	defer f.Close()

	conn := gridmap.Conn4
	if CLI.Conn8 {
		conn = gridmap.Conn8
	}

	grid, startXY, goalXY, blocked, err := loadMap(f, CLI.CellSize, conn)
	if err != nil {
		log.Fatal("failed to parse map", "err", err)
	}
	start := grid.NodeAt(startXY[0], startXY[1]).ID
	goal := grid.NodeAt(goalXY[0], goalXY[1]).ID

	rec := metrics.NewPrometheus(prometheus.NewRegistry())
	log.Info("running planner", "algo", CLI.Algo, "start", startXY, "goal", goalXY)

	var path []geom.Point
	var diag planner.Diagnostics
	var ok bool

	switch CLI.Algo {
	case "astar":
		p := planner.NewAStar(grid)
		p.SetRecorder(rec)
		ok = p.ComputeShortestPath(start, goal)
		path, diag = p.GetPath(), p.Diagnostics()
	case "thetastar":
		obstacles := rectanglesFromBlockedCells(grid, blocked)
		p := planner.NewThetaStar(grid, obstacles, CLI.Buffer)
		p.SetRecorder(rec)
		ok = p.ComputeShortestPath(start, goal)
		path, diag = p.GetPath(), p.Diagnostics()
	case "lpastar":
		p := planner.NewLPAStar(grid, start, goal)
		p.SetRecorder(rec)
		ok = p.ComputeShortestPath()
		path, diag = p.GetPath(), p.Diagnostics()
	case "dstarlite":
		p := planner.NewDStarLite(grid, start, goal)
		p.SetRecorder(rec)
		ok = p.ComputeShortestPath()
		path, diag = p.GetPath(), p.Diagnostics()
	default:
		log.Fatal("unknown planner", "algo", CLI.Algo)
	}

	if !ok {
		log.Error("no path found", "run_id", diag.RunID, "expanded", len(diag.Expanded), "duration", diag.Duration)
		os.Exit(1)
	}

	log.Info("path found", "run_id", diag.RunID, "waypoints", len(path), "expanded", len(diag.Expanded), "duration", diag.Duration)
	for _, p := range path {
		fmt.Printf("%.3f %.3f\n", p.X, p.Y)
	}
}

func loadMap(f *os.File, cellSize float64, conn gridmap.Connectivity) (*gridmap.Grid, [2]int, [2]int, []gridmap.CellUpdate, error) {
	var rows []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		rows = append(rows, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, [2]int{}, [2]int{}, nil, err
	}

	height := len(rows)
	width := 0
	for _, r := range rows {
		if len(r) > width {
			width = len(r)
		}
	}

	grid := gridmap.Build(width, height, cellSize, conn)
	var start, goalCell [2]int
	var blocked []gridmap.CellUpdate
	for y, row := range rows {
		for x, c := range row {
			switch c {
			case '#':
				blocked = append(blocked, gridmap.CellUpdate{X: x, Y: y, Value: gridmap.Blocked})
			case 'S':
				start = [2]int{x, y}
			case 'G':
				goalCell = [2]int{x, y}
			}
		}
	}
	grid.Update(blocked)
	return grid, start, goalCell, blocked, nil
}

// rectanglesFromBlockedCells gives Theta* one cell-sized square obstacle
// polygon per blocked cell, centered on the cell's world point, so its
// line-of-sight check sees the same occupancy the grid itself enforces.
func rectanglesFromBlockedCells(grid *gridmap.Grid, blocked []gridmap.CellUpdate) []gridmap.Polygon {
	half := grid.CellSize / 2
	polys := make([]gridmap.Polygon, 0, len(blocked))
	for _, u := range blocked {
		c := grid.GridToWorld(u.X, u.Y)
		polys = append(polys, gridmap.Polygon{Vertices: []geom.Point{
			{X: c.X - half, Y: c.Y - half},
			{X: c.X + half, Y: c.Y - half},
			{X: c.X + half, Y: c.Y + half},
			{X: c.X - half, Y: c.Y + half},
		}})
	}
	return polys
}

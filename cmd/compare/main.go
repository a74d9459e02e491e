package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/velezas/osm-road-routing/pkg/graph"
	"github.com/velezas/osm-road-routing/pkg/graph/path"
)

// compare loads a graph and runs Dijkstra and A* over a set of
// origin/destination pairs, printing the search statistics side by side.
func main() {
	graphFile := flag.String("graph", "road_graph.fmi", "graph file to load")
	useRandomTargets := flag.Bool("random", false, "create (new) random targets")
	amountTargets := flag.Int("n", 10, "how many targets to run")
	storeTargets := flag.Bool("store", false, "store targets (when newly generated)")
	targetFile := flag.String("targets", "targets.txt", "target file")
	seed := flag.Int64("seed", time.Now().UnixNano(), "seed for random targets")
	flag.Parse()

	start := time.Now()
	g := graph.NewAdjacencyArrayFromFmiFile(*graphFile)
	fmt.Printf("[TIME-Import] = %s (%d nodes, %d arcs)\n", time.Since(start), g.NodeCount(), g.ArcCount())

	var targets [][2]int
	if *useRandomTargets {
		targets = createTargets(*amountTargets, g.NodeCount(), *seed)
		if *storeTargets {
			writeTargets(targets, *targetFile)
		}
	} else {
		targets = readTargets(*targetFile)
		if *amountTargets < len(targets) {
			targets = targets[0:*amountTargets]
		}
	}

	runComparison(g, targets)
}

func runComparison(g graph.Graph, targets [][2]int) {
	totalDijkstraVisited, totalAStarVisited := 0, 0
	var totalDijkstraTime, totalAStarTime time.Duration
	unreachable := 0

	for i, target := range targets {
		origin, destination := target[0], target[1]

		start := time.Now()
		dijkstra, err := path.Dijkstra(g, origin, destination)
		dijkstraTime := time.Since(start)
		if err != nil {
			log.Fatalf("target %d (%d -> %d): %v", i, origin, destination, err)
		}

		start = time.Now()
		astar, err := path.AStar(g, origin, destination, nil)
		astarTime := time.Since(start)
		if err != nil {
			log.Fatalf("target %d (%d -> %d): %v", i, origin, destination, err)
		}

		if !dijkstra.Reachable {
			fmt.Printf("%3d: %d -> %d unreachable (visited %d nodes)\n", i, origin, destination, dijkstra.NodesVisited)
			unreachable++
			continue
		}

		if dijkstra.Distance != astar.Distance {
			log.Fatalf("target %d (%d -> %d): dijkstra found %d m, astar found %d m",
				i, origin, destination, dijkstra.Distance, astar.Distance)
		}

		fmt.Printf("%3d: %d -> %d, %d m over %d nodes\n", i, origin, destination, dijkstra.Distance, dijkstra.PathLength)
		fmt.Printf("     dijkstra: explored %6d, visited %6d, %s\n", dijkstra.NodesExplored, dijkstra.NodesVisited, dijkstraTime)
		fmt.Printf("     astar:    explored %6d, visited %6d, %s\n", astar.NodesExplored, astar.NodesVisited, astarTime)

		totalDijkstraVisited += dijkstra.NodesVisited
		totalAStarVisited += astar.NodesVisited
		totalDijkstraTime += dijkstraTime
		totalAStarTime += astarTime
	}

	reachable := len(targets) - unreachable
	if reachable == 0 {
		fmt.Printf("No reachable targets.\n")
		return
	}

	fmt.Printf("\n%d/%d targets reachable\n", reachable, len(targets))
	fmt.Printf("Average visited nodes: dijkstra %d, astar %d\n", totalDijkstraVisited/reachable, totalAStarVisited/reachable)
	fmt.Printf("Total time: dijkstra %s, astar %s\n", totalDijkstraTime, totalAStarTime)
	if totalAStarVisited < totalDijkstraVisited {
		improvement := float64(totalDijkstraVisited-totalAStarVisited) / float64(totalDijkstraVisited) * 100
		fmt.Printf("A* settled %.1f%% fewer nodes\n", improvement)
	}
}

func createTargets(n, nodeCount int, seed int64) [][2]int {
	rng := rand.New(rand.NewSource(seed))
	targets := make([][2]int, 0, n)
	for i := 0; i < n; i++ {
		targets = append(targets, [2]int{rng.Intn(nodeCount), rng.Intn(nodeCount)})
	}
	return targets
}

func readTargets(filename string) [][2]int {
	file, err := os.Open(filename)
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	targets := make([][2]int, 0)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		var origin, destination int
		if _, err := fmt.Sscanf(scanner.Text(), "%d %d", &origin, &destination); err != nil {
			continue
		}
		targets = append(targets, [2]int{origin, destination})
	}
	if err := scanner.Err(); err != nil {
		log.Fatal(err)
	}
	return targets
}

func writeTargets(targets [][2]int, filename string) {
	file, err := os.Create(filename)
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	for _, target := range targets {
		fmt.Fprintf(writer, "%d %d\n", target[0], target[1])
	}
	writer.Flush()
}

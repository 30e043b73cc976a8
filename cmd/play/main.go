// Command play is a bare stdin/stdout REPL for driving the engine
// interactively. Commands: "position <notation>" (or "position startpos")
// sets the board, "legal" lists pseudo-legal moves, "move <from><to>" plays
// one, "go depth <n>" searches and plays the engine's chosen reply, "rotate"
// flips perspective in place (BoardCodec's rotate, exposed directly rather
// than only as ApplyMove's final step), "quit" exits.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"sixmate/board"
	"sixmate/engine"
)

func main() {
	scanner := bufio.NewScanner(os.Stdin)
	b := board.StartPosition()
	printBoard(b)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		tokens := strings.Fields(line)
		switch strings.ToLower(tokens[0]) {
		case "quit", "exit":
			return
		case "position":
			if len(tokens) < 2 || tokens[1] == "startpos" {
				b = board.StartPosition()
			} else {
				parsed, err := board.Parse(strings.Join(tokens[1:], " "))
				if err != nil {
					fmt.Println("error:", err)
					continue
				}
				b = parsed
			}
			printBoard(b)
		case "rotate":
			b = b.Rotate()
			printBoard(b)
		case "legal":
			ml, err := board.GenerateMoves(b)
			if err != nil {
				fmt.Println("error:", err)
				continue
			}
			fmt.Println(strings.Join(ml.Strings(), " "))
		case "move":
			if len(tokens) < 2 {
				fmt.Println("usage: move <from><to>, e.g. move b2b4")
				continue
			}
			m, err := board.ParseMove(tokens[1])
			if err != nil {
				fmt.Println("error:", err)
				continue
			}
			if !engine.IsLegalMove(b, m) {
				fmt.Println("illegal move:", tokens[1])
				continue
			}
			b = b.ApplyMove(m)
			printBoard(b)
		case "go":
			depth := 4
			if len(tokens) >= 3 && tokens[1] == "depth" {
				if d, err := strconv.Atoi(tokens[2]); err == nil {
					depth = d
				}
			} else if len(tokens) >= 2 {
				if d, err := strconv.Atoi(tokens[1]); err == nil {
					depth = d
				}
			}
			m, mated, err := engine.SearchMove(b, depth)
			if err != nil {
				fmt.Println("error:", err)
				continue
			}
			if m.IsNone() {
				fmt.Println("resign")
				continue
			}
			fmt.Printf("bestmove %s", m)
			if mated {
				fmt.Print(" (king capture forced)")
			}
			fmt.Println()
			b = b.ApplyMove(m)
			printBoard(b)
		default:
			fmt.Println("unrecognized command:", tokens[0])
		}
	}
}

func printBoard(b board.Board) {
	fmt.Println(b)
}

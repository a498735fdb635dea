// Command chatscreen opens a terminal chat screen that answers every message
// with a canned markdown reply.
package main

import "github.com/diogo/chatscreen/internal/commands"

func main() {
	commands.Execute()
}

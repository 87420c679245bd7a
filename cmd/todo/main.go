// Command todo talks to the TODO service from the terminal.
package main

func main() {
	Execute()
}

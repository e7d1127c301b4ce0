// Command resize-portfolio generates preview and slider images for the
// portfolio page.
package main

import "portfolio/cli"

func main() {
	cli.Execute()
}

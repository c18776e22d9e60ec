// Command rosctl manages serverless ROS templates and streams deployment payloads.
package main

import "github.com/cameronsjo/rosctl/internal/cmd"

func main() {
	cmd.Execute()
}

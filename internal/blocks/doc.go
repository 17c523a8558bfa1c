// Package blocks is a goldmark extension that turns fenced code blocks
// tagged "cards" or "projects" (alias "gantt") into rendered cards grids
// and project timelines.
//
//	```projects period-format="MMM" id=roadmap
//	- title: Design
//	  start: 2022-03-01
//	  lasts: 2 weeks
//	```
//
// Block bodies are YAML (or JSON). Words after the language override the
// extension defaults for that block. A block that fails to decode or
// validate makes goldmark's Convert return the error; nothing is dropped
// silently.
package blocks

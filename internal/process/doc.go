// Package process cleans up browser process trees left by the PDF renderer.
package process

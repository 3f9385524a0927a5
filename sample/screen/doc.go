// Package screen exposes the sample graph over HTTP, one route per screen.
package screen

// Package render hosts the output side of gatewheel: the ring generators
// and sinks under render/ring, the channel-network node-link view under
// render/nodelink, and shared SVG-to-raster conversion helpers.
package render

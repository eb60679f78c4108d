// Package formats writes generated meshes to interchange file formats.
package formats

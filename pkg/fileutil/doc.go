// Package fileutil provides bounded reads and atomic writes for the small
// configuration files agents keep on disk.
package fileutil

// Package memory provides an in-process ports.ResultCache.
package memory

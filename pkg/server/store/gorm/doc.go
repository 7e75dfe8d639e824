// Package gorm implements the store interfaces using GORM against postgres.
package gorm

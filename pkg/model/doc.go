// Package model contains the database row models.
package model

// Package models contains data structures for the application's domain models.
package models

import "time"

// User represents a community member in the EcoConnect application.
type User struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Username       string    `gorm:"unique;not null" json:"username"`
	Email          string    `gorm:"unique;not null" json:"email"`
	Avatar         string    `json:"avatar"`
	Bio            string    `json:"bio"`
	Title          string    `json:"title"`
	PostsCount     int       `gorm:"not null;default:0" json:"postsCount"`
	FollowersCount int       `gorm:"not null;default:0" json:"followersCount"`
	CreatedAt      time.Time `json:"createdAt"`
}

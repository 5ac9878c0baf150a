// Package seed provides helpers to create demo and test data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"ecoconnect/internal/models"
	"ecoconnect/internal/service"

	"gorm.io/gorm"
)

func ptr(v uint) *uint { return &v }

var demoCategories = []models.Category{
	{Name: "Environment", Slug: "environment", Color: "green", Description: "Environmental conservation and sustainability"},
	{Name: "Renewable Energy", Slug: "renewable-energy", Color: "yellow", Description: "Clean energy technologies and innovations"},
	{Name: "Economy", Slug: "economy", Color: "blue", Description: "Economic aspects of sustainability"},
	{Name: "Decentralized Tech", Slug: "decentralized-tech", Color: "purple", Description: "Blockchain and decentralized technologies"},
}

var demoUsers = []models.User{
	{Username: "sarah_chen", Email: "sarah@example.com", Avatar: "SC", Bio: "Energy policy researcher passionate about renewable energy solutions.", Title: "Energy Policy Researcher"},
	{Username: "david_johnson", Email: "david@example.com", Avatar: "DJ", Bio: "Economic analyst focusing on sustainable development.", Title: "Economic Analyst"},
	{Username: "mike_khan", Email: "mike@example.com", Avatar: "MK", Bio: "Blockchain developer building decentralized climate solutions.", Title: "Blockchain Developer"},
	{Username: "anna_lopez", Email: "anna@example.com", Avatar: "AL", Bio: "Environmental advocate and community organizer.", Title: "Environmental Advocate"},
	{Username: "rachel_park", Email: "rachel@example.com", Avatar: "RP", Bio: "Smart grid engineer working on energy storage solutions.", Title: "Smart Grid Engineer"},
}

var demoTags = []models.Tag{
	{Name: "Solar", Slug: "solar", Color: "green"},
	{Name: "Blockchain", Slug: "blockchain", Color: "blue"},
	{Name: "Sustainability", Slug: "sustainability", Color: "amber"},
	{Name: "DeFi", Slug: "defi", Color: "purple"},
	{Name: "Wind Energy", Slug: "wind-energy", Color: "green"},
	{Name: "Carbon Credits", Slug: "carbon-credits", Color: "gray"},
}

var demoPosts = []models.Post{
	{
		Title:      "The Future of Residential Solar: How Community Solar Gardens Are Changing Everything",
		Content:    "Community solar initiatives are making renewable energy accessible to everyone...",
		Excerpt:    "Discover how community solar initiatives are making renewable energy accessible to everyone, regardless of their housing situation or roof conditions.",
		CoverImage: "https://images.unsplash.com/photo-1508514177221-188b1cf16e9d",
		CategoryID: ptr(2), AuthorID: ptr(1), ReadTime: 8, Likes: 124, Views: 1250, Featured: true,
	},
	{
		Title:      "Blockchain for Carbon Credits: A Decentralized Approach",
		Content:    "Blockchain technology is revolutionizing carbon credit tracking...",
		Excerpt:    "How blockchain technology is revolutionizing carbon credit tracking and creating transparent, verifiable environmental impact.",
		CoverImage: "https://images.unsplash.com/photo-1639762681485-074b7f938ba0",
		CategoryID: ptr(4), AuthorID: ptr(3), ReadTime: 5, Likes: 89, Views: 756,
	},
	{
		Title:      "10 Simple Ways Communities Can Reduce Waste Together",
		Content:    "Practical strategies for community waste reduction...",
		Excerpt:    "Practical strategies that neighborhoods and communities can implement to significantly reduce their environmental footprint.",
		CoverImage: "https://images.unsplash.com/photo-1542601906990-b4d3fb778b09",
		CategoryID: ptr(1), AuthorID: ptr(4), ReadTime: 3, Likes: 156, Views: 892,
	},
	{
		Title:      "The Economics of Wind Energy: Why It's Becoming Unstoppable",
		Content:    "Wind energy economics analysis...",
		Excerpt:    "An analysis of how wind energy has become the cheapest source of electricity in many regions and what this means for the future.",
		CoverImage: "https://images.unsplash.com/photo-1466611653911-95081537e5b7",
		CategoryID: ptr(3), AuthorID: ptr(2), ReadTime: 7, Likes: 203, Views: 1456,
	},
	{
		Title:      "Smart Grids and Energy Storage: The Missing Pieces",
		Content:    "Understanding smart grid technology...",
		Excerpt:    "Understanding how smart grid technology and advanced energy storage solutions are enabling the renewable energy transition.",
		CoverImage: "https://images.unsplash.com/photo-1559827260-dc66d52bef19",
		CategoryID: ptr(2), AuthorID: ptr(5), ReadTime: 6, Likes: 112, Views: 634,
	},
	{
		Title:      "Cara Mudah Memulai Kompos di Rumah untuk Pemula",
		Content:    "Kompos adalah cara mudah mengurangi sampah organik sambil menciptakan pupuk alami...",
		Excerpt:    "Panduan lengkap memulai kompos di rumah dengan bahan-bahan sederhana yang mudah ditemukan.",
		CoverImage: "https://images.unsplash.com/photo-1416879595882-3373a0480b5b",
		CategoryID: ptr(1), AuthorID: ptr(4), ReadTime: 4, Likes: 89, Views: 567,
	},
	{
		Title:      "Mengapa Energi Surya Adalah Investasi Terbaik untuk Masa Depan",
		Content:    "Dengan biaya panel surya yang terus menurun, investasi energi surya menjadi semakin menarik...",
		Excerpt:    "Analisis investasi energi surya dan dampak positifnya terhadap lingkungan dan keuangan keluarga.",
		CoverImage: "https://images.unsplash.com/photo-1508514177221-188b1cf16e9d",
		CategoryID: ptr(2), AuthorID: ptr(1), ReadTime: 7, Likes: 145, Views: 892,
	},
	{
		Title:      "DeFi untuk Pembiayaan Proyek Lingkungan: Peluang dan Tantangan",
		Content:    "Decentralized Finance membuka peluang baru untuk mendanai proyek-proyek lingkungan...",
		Excerpt:    "Bagaimana teknologi DeFi dapat membantu membiayai proyek lingkungan dengan cara yang transparan.",
		CoverImage: "https://images.unsplash.com/photo-1639762681485-074b7f938ba0",
		CategoryID: ptr(4), AuthorID: ptr(3), ReadTime: 8, Likes: 73, Views: 445,
	},
	{
		Title:      "5 Teknologi Hijau yang Akan Mengubah Dunia di 2025",
		Content:    "Dari teknologi penangkap karbon hingga bioplastik, inilah inovasi yang akan membentuk masa depan...",
		Excerpt:    "Teknologi hijau terdepan yang siap merevolusi cara kita berinteraksi dengan lingkungan.",
		CoverImage: "https://images.unsplash.com/photo-1581091226825-a6a2a5aee158",
		CategoryID: ptr(2), AuthorID: ptr(5), ReadTime: 6, Likes: 198, Views: 1123,
	},
}

// postTagLinks maps demo post index (0-based) to demo tag indexes (0-based).
var postTagLinks = map[int][]int{
	0: {0, 2},
	1: {1, 3, 5},
	2: {2},
	3: {4, 2},
	4: {0, 4},
}

// Demo loads the canonical demo dataset: 4 categories, 5 users, 6 tags and
// 9 published posts with tag links. Idempotent, it is skipped when any
// category already exists.
func Demo(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("demo data already present, skipping seed")
		return nil
	}

	// #nosec G404: acceptable for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	categories := make([]models.Category, len(demoCategories))
	copy(categories, demoCategories)
	if err := db.Create(&categories).Error; err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}

	users := make([]models.User, len(demoUsers))
	copy(users, demoUsers)
	for i := range users {
		users[i].PostsCount = r.Intn(25) + 5
		users[i].FollowersCount = r.Intn(1500) + 200
	}
	if err := db.Create(&users).Error; err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}

	tags := make([]models.Tag, len(demoTags))
	copy(tags, demoTags)
	if err := db.Create(&tags).Error; err != nil {
		return fmt.Errorf("failed to seed tags: %w", err)
	}

	posts := make([]models.Post, len(demoPosts))
	copy(posts, demoPosts)
	for i := range posts {
		posts[i].Slug = service.Slugify(posts[i].Title)
		posts[i].Published = true
		// spread creation over the past week so the activity feed and the
		// default ordering look alive
		posts[i].CreatedAt = time.Now().Add(-time.Duration(r.Intn(7*24*60)) * time.Minute)
	}
	if err := db.Create(&posts).Error; err != nil {
		return fmt.Errorf("failed to seed posts: %w", err)
	}

	for postIdx, tagIdxs := range postTagLinks {
		post := posts[postIdx]
		for _, tagIdx := range tagIdxs {
			if err := db.Model(&post).Association("Tags").Append(&tags[tagIdx]); err != nil {
				return fmt.Errorf("failed to link tags for post %d: %w", post.ID, err)
			}
		}
	}

	log.Printf("seeded %d categories, %d users, %d tags, %d posts",
		len(categories), len(users), len(tags), len(posts))
	return nil
}

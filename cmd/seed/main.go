// Command seed loads the demo dataset and optional fake bulk data into the
// configured database.
package main

import (
	"flag"
	"log"

	"ecoconnect/internal/config"
	"ecoconnect/internal/database"
	"ecoconnect/internal/models"
	"ecoconnect/internal/seed"
)

func main() {
	extraUsers := flag.Int("users", 0, "number of additional fake users to create")
	extraPosts := flag.Int("posts", 0, "number of additional fake posts to create")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Demo(db); err != nil {
		log.Fatalf("Failed to seed demo data: %v", err)
	}

	if *extraUsers > 0 || *extraPosts > 0 {
		factory := seed.NewFactory(db)

		users := make([]*models.User, 0, *extraUsers)
		for i := 0; i < *extraUsers; i++ {
			user, err := factory.CreateUser()
			if err != nil {
				log.Fatalf("Failed to create fake user: %v", err)
			}
			users = append(users, user)
		}
		log.Printf("created %d fake users", len(users))

		if *extraPosts > 0 && len(users) == 0 {
			log.Fatal("cannot create fake posts without fake users; pass -users too")
		}
		for i := 0; i < *extraPosts; i++ {
			author := users[i%len(users)]
			if _, err := factory.CreatePost(author); err != nil {
				log.Fatalf("Failed to create fake post: %v", err)
			}
		}
		log.Printf("created %d fake posts", *extraPosts)
	}

	log.Println("Seeding complete")
}

// Seeds a fresh workspace with the demo team, one lead, two customers
// and two deals. Safe to re-run: it does nothing once users exist.
package main

import (
	"log"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"simplecrm/internal/config"
	"simplecrm/internal/storage"
	"simplecrm/internal/store"
)

const seedPassword = "password123"

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	var backend storage.Backend
	if cfg.StorageDriver == "badger" {
		backend, err = storage.OpenBadger(cfg.BadgerPath)
	} else {
		backend, err = storage.OpenGormKV(cfg.DatabaseURL)
	}
	if err != nil {
		log.Fatal(err)
	}
	defer backend.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal(err)
	}

	st := store.New(backend)
	if err := st.Seed(string(hash)); err != nil {
		log.Fatal(err)
	}

	log.Printf("seeded %d users, %d leads, %d customers, %d deals",
		len(st.Users()), len(st.Leads()), len(st.Customers()), len(st.Deals()))
}

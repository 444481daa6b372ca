package cmd

import (
	"encoding/json"
	"log"
	"os"

	"github.com/spf13/cobra"

	"studyvault/backend/config"
	"studyvault/backend/models"
	"studyvault/backend/store"
	"studyvault/backend/utils"
)

var seedFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Bulk-load materials from a JSON file",
	Long: `Seed inserts material rows from a JSON array into the live table.

Each entry uses the materials column names:

  [{"regulation": 22, "branch": "CSE", "year": 2, "sem": 1,
    "subject_name": "DBMS", "credits": 4, "material_type": "Notes",
    "material_name": "Unit 1 Notes", "url": "https://drive.google.com/...",
    "unit": 1}]`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Error loading config: %v", err)
		}

		db, err := utils.InitDB(cfg)
		if err != nil {
			log.Fatalf("Error initializing database: %v", err)
		}

		data, err := os.ReadFile(seedFile)
		if err != nil {
			log.Fatalf("Error reading seed file: %v", err)
		}

		var materials []models.Material
		if err := json.Unmarshal(data, &materials); err != nil {
			log.Fatalf("Error parsing seed file: %v", err)
		}

		materialStore := store.NewMaterialStore(db)
		inserted := 0
		for i := range materials {
			if err := materialStore.Insert(&materials[i]); err != nil {
				log.Printf("Skipping row %d: %v", i, err)
				continue
			}
			inserted++
		}

		log.Printf("Seeded %d of %d materials", inserted, len(materials))
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "materials.json", "Path to the JSON seed file")
}

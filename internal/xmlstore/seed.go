package xmlstore

import (
	"fmt"
	"log"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const xmlHeader = `<?xml version="1.0" encoding="UTF-8"?>` + "\n"

type seedBin struct {
	id       int
	adresse  string
	lat, lng float64
	status   string
}

var seedBins = []seedBin{
	{1, "12 Rue de la République", 45.7640, 4.8357, "plein"},
	{2, "45 Avenue Jean Jaurès", 45.7455, 4.8424, "plein"},
	{3, "8 Place Bellecour", 45.7578, 4.8320, "moitie"},
	{4, "27 Cours Gambetta", 45.7512, 4.8537, "plein"},
	{5, "3 Quai Saint-Antoine", 45.7631, 4.8297, "vide"},
	{6, "19 Rue Garibaldi", 45.7601, 4.8521, "moitie"},
	{7, "64 Boulevard des Brotteaux", 45.7685, 4.8603, "plein"},
	{8, "5 Rue Victor Hugo", 45.7543, 4.8316, "plein"},
}

// SeedBins writes a starter bin document when none exists. An existing
// file is never overwritten.
func SeedBins(s *Store) error {
	if s.Exists(DocBins) {
		log.Println("✓ Bin document already present, skipping...")
		return nil
	}

	log.Printf("🌱 Seeding %d bins...", len(seedBins))

	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString("<trashCans>\n")
	for _, bin := range seedBins {
		fmt.Fprintf(&b, "    <trashCan id=\"%d\">\n", bin.id)
		b.WriteString("        <lieu>\n")
		fmt.Fprintf(&b, "            <adresse>%s</adresse>\n", Escape(bin.adresse))
		b.WriteString("            <coordonnees>\n")
		fmt.Fprintf(&b, "                <latitude>%.4f</latitude>\n", bin.lat)
		fmt.Fprintf(&b, "                <longitude>%.4f</longitude>\n", bin.lng)
		b.WriteString("            </coordonnees>\n")
		b.WriteString("        </lieu>\n")
		fmt.Fprintf(&b, "        <status>%s</status>\n", bin.status)
		b.WriteString("    </trashCan>\n")
	}
	b.WriteString("</trashCans>\n")

	if err := s.Write(DocBins, b.String()); err != nil {
		return err
	}
	log.Println("✓ Successfully seeded bins")
	return nil
}

// SeedUsers writes a starter user document with one supervisor, one
// admin and two workers. Passwords are stored bcrypt-hashed.
func SeedUsers(s *Store) error {
	if s.Exists(DocUsers) {
		log.Println("✓ User document already present, skipping...")
		return nil
	}

	log.Println("🌱 Seeding test users...")

	chefPassword, err := bcrypt.GenerateFromPassword([]byte("chef123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	adminPassword, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	ouvrierPassword, err := bcrypt.GenerateFromPassword([]byte("ouvrier123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	users := []struct {
		id                                 int
		login, password, nom, prenom, role string
	}{
		{1, "mdupont", string(chefPassword), "Dupont", "Marie", "chef"},
		{2, "admin", string(adminPassword), "Martin", "Paul", "admin"},
		{3, "jbernard", string(ouvrierPassword), "Bernard", "Jean", "ouvrier"},
		{4, "lpetit", string(ouvrierPassword), "Petit", "Lucie", "ouvrier"},
	}

	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString("<users>\n")
	for _, u := range users {
		fmt.Fprintf(&b, "    <user id=\"%d\">\n", u.id)
		fmt.Fprintf(&b, "        <login>%s</login>\n", Escape(u.login))
		fmt.Fprintf(&b, "        <password>%s</password>\n", Escape(u.password))
		fmt.Fprintf(&b, "        <nom>%s</nom>\n", Escape(u.nom))
		fmt.Fprintf(&b, "        <prenom>%s</prenom>\n", Escape(u.prenom))
		fmt.Fprintf(&b, "        <role>%s</role>\n", Escape(u.role))
		b.WriteString("    </user>\n")
		log.Printf("  ✓ Created user: %s (%s)", u.login, u.role)
	}
	b.WriteString("</users>\n")

	if err := s.Write(DocUsers, b.String()); err != nil {
		return err
	}
	log.Println("✓ Successfully seeded test users")
	log.Println("  📧 Chef:  mdupont / chef123")
	log.Println("  📧 Admin: admin / admin123")
	return nil
}

// SeedTours writes a starter tour/vehicle pair when those documents are
// missing, and an empty report document so the allocator has a root to
// append under.
func SeedTours(s *Store) error {
	if !s.Exists(DocVehicles) {
		log.Println("🌱 Seeding vehicles...")
		var b strings.Builder
		b.WriteString(xmlHeader)
		b.WriteString("<vehicules>\n")
		b.WriteString("    <vehicule id=\"1\">\n")
		b.WriteString("        <chauffeur id=\"1\"/>\n")
		b.WriteString("        <matricule>AB-123-CD</matricule>\n")
		b.WriteString("    </vehicule>\n")
		b.WriteString("</vehicules>\n")
		if err := s.Write(DocVehicles, b.String()); err != nil {
			return err
		}
	}

	if !s.Exists(DocTours) {
		log.Println("🌱 Seeding tours...")
		var b strings.Builder
		b.WriteString(xmlHeader)
		b.WriteString("<tournees>\n")
		b.WriteString("    <tournee id=\"1\">\n")
		b.WriteString("        <vehicule id=\"1\"/>\n")
		b.WriteString("        <ouvriers>\n")
		b.WriteString("            <ouvrier id=\"3\"/>\n")
		b.WriteString("            <ouvrier id=\"4\"/>\n")
		b.WriteString("        </ouvriers>\n")
		b.WriteString("    </tournee>\n")
		b.WriteString("</tournees>\n")
		if err := s.Write(DocTours, b.String()); err != nil {
			return err
		}
	}

	if !s.Exists(DocReports) {
		log.Println("🌱 Creating empty report document...")
		if err := s.Write(DocReports, xmlHeader+"<rapports>\n</rapports>\n"); err != nil {
			return err
		}
	}

	return nil
}

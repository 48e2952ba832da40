// Command gendirectory writes a sample contact-directory workbook for local
// runs and manual testing of the service.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/tealeg/xlsx"
)

var header = []string{
	"County", "City/Municipality", "Department Type", "Department Name",
	"Contact", "Title/Role", "Phone", "Email",
	"Public Records Portal URL", "Preferred Method", "Notes", "Verified", "Date Verified",
}

var sampleRows = [][]string{
	{"Lee", "Fort Myers", "Building", "City of Fort Myers Building Department",
		"A. Rivera", "Records Clerk", "239-555-0100", "records@cityftmyers.gov",
		"https://records.cityftmyers.gov", "portal", "Responds within 5 business days", "Yes", "2026-01-15"},
	{"Lee", "Fort Myers", "Planning", "City of Fort Myers Planning Division",
		"", "", "239-555-0101", "planning@cityftmyers.gov", "", "email", "", "No", ""},
	{"Lee", "Cape Coral", "Building", "City of Cape Coral Building Division",
		"B. Chen", "Permit Tech", "239-555-0200", "permits@capecoral.gov, records@capecoral.gov",
		"https://records.capecoral.gov", "portal", "", "Yes", "2026-02-02"},
	{"Lee", "Unincorporated", "Planning", "Lee County Community Development",
		"", "", "239-555-0300", "dcdrecords@leegov.com", "https://www.leegov.com/records", "portal", "", "Yes", "2025-11-20"},
	{"Lee", "*", "Fire", "Lee County Fire Marshal",
		"C. Diaz", "Fire Marshal", "239-555-0400", "firerecords@leegov.com", "", "email",
		"County-wide; individual districts forward as needed", "No", ""},
	{"Collier", "Naples", "Building", "City of Naples Building Department",
		"", "", "239-555-0500", "buildingrecords@naplesgov.com", "https://records.naplesgov.com", "portal", "", "Yes", "2026-01-08"},
	{"Collier", "*", "Environmental", "Collier County Pollution Control",
		"", "", "239-555-0600", "pollutioncontrol@colliercountyfl.gov", "", "email", "", "No", ""},
	{"Miami-Dade", "Miami", "Building", "City of Miami Building Department",
		"D. Ortiz", "Public Records", "305-555-0700", "buildingrecords@miamigov.com",
		"https://records.miamigov.com", "portal", "", "Yes", "2026-02-18"},
	{"Miami-Dade", "Hialeah", "Building", "City of Hialeah Building Division",
		"", "", "305-555-0800", "building@hialeahfl.gov", "", "email", "", "No", ""},
	{"Miami-Dade", "Unincorporated", "Environmental", "Miami-Dade DERM",
		"", "", "305-555-0900", "derm@miamidade.gov", "https://www.miamidade.gov/derm", "portal",
		"Folio prefix 30 parcels", "Yes", "2026-01-30"},
	{"Miami-Dade", "*", "Fire", "Miami-Dade Fire Rescue Records",
		"", "", "305-555-1000", "mdfrrecords@miamidade.gov", "", "email", "", "Yes", "2025-12-12"},
}

func main() {
	out := flag.String("o", "data/master.xlsx", "output workbook path")
	sheet := flag.String("sheet", "Contacts", "sheet name")
	flag.Parse()

	if err := run(*out, *sheet); err != nil {
		fmt.Fprintln(os.Stderr, "gendirectory:", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %d rows to %s\n", len(sampleRows), *out)
}

func run(out, sheetName string) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet(sheetName)
	if err != nil {
		return fmt.Errorf("add sheet: %w", err)
	}

	hr := sheet.AddRow()
	for _, h := range header {
		hr.AddCell().Value = h
	}
	for _, cells := range sampleRows {
		row := sheet.AddRow()
		for _, v := range cells {
			row.AddCell().Value = v
		}
	}

	if err := file.Save(out); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

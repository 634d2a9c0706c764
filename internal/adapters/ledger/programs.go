package ledger

// programNumbers maps a budget category from the purchase form to its
// college program number. Categories missing from the map resolve to an
// empty activity code.
var programNumbers = map[string]string{
	"Cab Retreat":                    "6100",
	"Cab Food/Prizes":                "6653",
	"Laundry":                        "8206",
	"Initiative":                     "0200",
	"Storage Assistance":             "0330",
	"Socioeconomic Inclusivity Fund": "1350",
	"RAs Budget":                     "6658",
	"Awards":                         "6333",
	"Spirit":                         "6137",
	"Sports":                         "2400",
	"Beer Bike":                      "6133",
	"Merch":                          "5080",
	"Community Service":              "0331",
	"Permanent Improvements":         "6531",
	"Staff Appreciation":             "8601",
	"Associates":                     "6650",
	"Alumni":                         "6951",
	"Academic Mentors":               "1110",
	"PAAs":                           "6655",
	"Diversity":                      "6600",
	"Senior Class":                   "6136",
	"Junior Class":                   "6601",
	"Sophomore Class":                "6602",
	"Freshmen Class":                 "6134",
	"Off Campus":                     "6135",
	"Socials":                        "4600",
	"BGHS":                           "6603",
	"Chief Justice":                  "8202",
	"President":                      "6656",
	"STRIVE":                         "6604",
	"RHA":                            "8604",
	"BakerShake":                     "3150",
	"Baker Black Caucus":             "6605",
	"O-Week":                         "6000",
}

// activityFor returns the program number for a budget category, or ""
// when the category has no mapping.
func activityFor(budget string) string {
	return programNumbers[budget]
}

package catalog

import "ag-topup/internal/models"

// Packages is the single authoritative price table. The storefront previously
// shipped several near-identical copies of this data with divergent prices;
// every lookup now goes through this table. Prices are whole Taka.
var Packages = []models.Package{
	// Subscription plans
	{
		ID:          "weekly-subscription",
		CategoryID:  models.CategorySubscription,
		Name:        "সাপ্তাহিক সাবস্ক্রিপশন",
		NameEn:      "Weekly",
		Price:       155,
		Description: "৭ দিনের প্রিমিয়াম সুবিধা",
		Validity:    "৭ দিনের জন্য বৈধ",
	},
	{
		ID:          "monthly-subscription",
		CategoryID:  models.CategorySubscription,
		Name:        "মাসিক সাবস্ক্রিপশন",
		NameEn:      "Monthly",
		Price:       760,
		Description: "৩০ দিনের প্রিমিয়াম সুবিধা",
		Validity:    "৩০ দিনের জন্য বৈধ",
	},

	// Diamond packages
	{
		ID:          "25-diamond",
		CategoryID:  models.CategoryDiamond,
		Name:        "২৫ Diamond",
		NameEn:      "25 Diamond",
		Diamonds:    25,
		Price:       23,
		Description: "নতুন খেলোয়াড়দের জন্য স্টার্টার প্যাক",
	},
	{
		ID:          "50-diamond",
		CategoryID:  models.CategoryDiamond,
		Name:        "৫০ Diamond",
		NameEn:      "50 Diamond",
		Diamonds:    50,
		Price:       37,
		Description: "ছোট রিচার্জের জন্য আদর্শ",
	},
	{
		ID:          "115-diamond",
		CategoryID:  models.CategoryDiamond,
		Name:        "১১৫ Diamond",
		NameEn:      "115 Diamond",
		Diamonds:    115,
		Price:       78,
		Description: "মধ্যম মানের প্যাকেজ",
	},
	{
		ID:          "240-diamond",
		CategoryID:  models.CategoryDiamond,
		Name:        "২৪০ Diamond",
		NameEn:      "240 Diamond",
		Diamonds:    240,
		Price:       158,
		Description: "জনপ্রিয় চয়েস",
	},
	{
		ID:          "355-diamond",
		CategoryID:  models.CategoryDiamond,
		Name:        "৩৫৫ Diamond",
		NameEn:      "355 Diamond",
		Diamonds:    355,
		Price:       235,
		Description: "ভালো মূল্যের প্যাকেজ",
	},
	{
		ID:          "480-diamond",
		CategoryID:  models.CategoryDiamond,
		Name:        "৪৮০ Diamond",
		NameEn:      "480 Diamond",
		Diamonds:    480,
		Price:       313,
		Description: "স্ট্যান্ডার্ড প্যাকেজ",
	},
	{
		ID:          "505-diamond",
		CategoryID:  models.CategoryDiamond,
		Name:        "৫০৫ Diamond",
		NameEn:      "505 Diamond",
		Diamonds:    505,
		Price:       348,
		Badge:       "জনপ্রিয়",
		BadgeColor:  "bg-orange-500",
		Description: "সবচেয়ে বিক্রিত প্যাকেজ",
	},
	{
		ID:          "610-diamond",
		CategoryID:  models.CategoryDiamond,
		Name:        "৬১০ Diamond",
		NameEn:      "610 Diamond",
		Diamonds:    610,
		Price:       397,
		Description: "উন্নত গেমারদের জন্য",
	},
	{
		ID:          "850-diamond",
		CategoryID:  models.CategoryDiamond,
		Name:        "৮৫০ Diamond",
		NameEn:      "850 Diamond",
		Diamonds:    850,
		Price:       548,
		Description: "প্রিমিয়াম প্যাকেজ",
	},
	{
		ID:          "1090-diamond",
		CategoryID:  models.CategoryDiamond,
		Name:        "১০৯০ Diamond",
		NameEn:      "1090 Diamond",
		Diamonds:    1090,
		Price:       730,
		Badge:       "বেস্ট সেলার",
		BadgeColor:  "bg-purple-500",
		Description: "দক্ষ খেলোয়াড়দের পছন্দ",
	},
	{
		ID:          "1240-diamond",
		CategoryID:  models.CategoryDiamond,
		Name:        "১২৪০ Diamond",
		NameEn:      "1240 Diamond",
		Diamonds:    1240,
		Price:       788,
		Description: "উচ্চ-মানের প্যাকেজ",
	},
	{
		ID:          "1850-diamond",
		CategoryID:  models.CategoryDiamond,
		Name:        "১৮৫০ Diamond",
		NameEn:      "1850 Diamond",
		Diamonds:    1850,
		Price:       1170,
		Description: "বড় রিচার্জ প্যাকেজ",
	},
	{
		ID:          "2090-diamond",
		CategoryID:  models.CategoryDiamond,
		Name:        "২০৯০ Diamond",
		NameEn:      "2090 Diamond",
		Diamonds:    2090,
		Price:       1330,
		Description: "মেগা প্যাকেজ",
	},
	{
		ID:          "2530-diamond",
		CategoryID:  models.CategoryDiamond,
		Name:        "২৫৩০ Diamond",
		NameEn:      "2530 Diamond",
		Diamonds:    2530,
		Price:       1560,
		Badge:       "বেস্ট ভ্যালু",
		BadgeColor:  "bg-yellow-500",
		Description: "সর্বোচ্চ সাশ্রয়ী প্যাকেজ",
	},
	{
		ID:          "3770-diamond",
		CategoryID:  models.CategoryDiamond,
		Name:        "৩৭৭০ Diamond",
		NameEn:      "3770 Diamond",
		Diamonds:    3770,
		Price:       2360,
		Description: "সুপার প্যাকেজ",
	},
	{
		ID:          "4010-diamond",
		CategoryID:  models.CategoryDiamond,
		Name:        "৪০১০ Diamond",
		NameEn:      "4010 Diamond",
		Diamonds:    4010,
		Price:       2490,
		Description: "আল্ট্রা প্যাকেজ",
	},
	{
		ID:          "5060-diamond",
		CategoryID:  models.CategoryDiamond,
		Name:        "৫০৬০ Diamond",
		NameEn:      "5060 Diamond",
		Diamonds:    5060,
		Price:       3120,
		Badge:       "প্রিমিয়াম",
		BadgeColor:  "bg-red-500",
		Description: "পেশাদার খেলোয়াড়দের জন্য সর্বোচ্চ প্যাকেজ",
	},

	// Weekly+Monthly combo offers. OriginalPrice is the pre-discount reference;
	// combo-4 additionally lists its constituents so the bundle reference price
	// can be recomputed instead of trusted.
	{
		ID:            "combo-1",
		CategoryID:    models.CategoryCombo,
		Name:          "১২৪০ Diamond কম্বো",
		NameEn:        "1240 Diamond Combo",
		Diamonds:      1240,
		Price:         350,
		OriginalPrice: 788,
		Badge:         "কম্বো অফার",
		BadgeColor:    "bg-red-500",
		Description:   "স্পেশাল ডিসকাউন্ট অফার",
	},
	{
		ID:            "combo-2",
		CategoryID:    models.CategoryCombo,
		Name:          "২৫৬০ Diamond কম্বো",
		NameEn:        "2560 Diamond Combo",
		Diamonds:      2560,
		Price:         610,
		OriginalPrice: 1560,
		Badge:         "কম্বো অফার",
		BadgeColor:    "bg-red-500",
		Description:   "মেগা ডিসকাউন্ট অফার",
	},
	{
		ID:            "combo-3",
		CategoryID:    models.CategoryCombo,
		Name:          "৫০৬০ Diamond কম্বো",
		NameEn:        "5060 Diamond Combo",
		Diamonds:      5060,
		Price:         1250,
		OriginalPrice: 3120,
		Badge:         "কম্বো অফার",
		BadgeColor:    "bg-red-500",
		Description:   "আল্টিমেট ডিসকাউন্ট অফার",
	},
	{
		ID:            "combo-4",
		CategoryID:    models.CategoryCombo,
		Name:          "Weekly+Monthly",
		NameEn:        "Weekly + Monthly Subscription",
		Price:         600,
		OriginalPrice: 915,
		Badge:         "সাবস্ক্রিপশন কম্বো",
		BadgeColor:    "bg-purple-500",
		Description:   "সাপ্তাহিক + মাসিক প্ল্যান একসাথে",
		Validity:      "৩০ দিনের জন্য বৈধ",
		ComboOf:       []string{"weekly-subscription", "monthly-subscription"},
	},
}

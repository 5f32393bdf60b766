package preferences

// Defaults is the category list a fresh preference collection is seeded with.
var Defaults = []string{
	"Cardiology",
	"Mental Health & Wellness",
	"Nutrition & Diet",
	"Fitness & Physical Therapy",
	"Women's Health",
	"Men's Health",
	"Pediatrics & Child Care",
	"Pregnancy & Maternal Health",
	"Chronic Illness Management",
	"Health Technology & Telemedicine",
	"Medical Research & Innovations",
	"Surgery & Surgical Procedures",
	"Skin Care & Dermatology",
	"Dental & Oral Health",
	"Alternative Medicine",
	"Emergency Medicine & First Aid",
	"Vaccinations & Immunization",
	"Cancer Awareness & Oncology",
	"Mental Disorders & Therapy Support",
	"Public Health & Disease Prevention",
	"Medication Guides & Drug Awareness",
	"Medical Career & Education",
	"Patient Care & Hospital Experience",
	"Health Insurance & Medical Finance",
	"Rehabilitation & Recovery",
	"AI in Healthcare",
	"Medical Robotics",
	"Digital Health Records (EHR)",
	"Gut Health & Microbiome",
	"Sleep Disorders & Insomnia",
	"Autoimmune Diseases",
	"COVID-19 & Infectious Diseases",
	"Rare Diseases & Genetic Disorders",
	"Plastic & Reconstructive Surgery",
	"Physiotherapy & Sports Medicine",
	"Hormonal Health & Endocrinology",
	"Blood Donation & Organ Transplant",
	"Health & Wellness Coaching",
	"Medical Ethics & Law",
	"Healthcare Startups & Innovations",
	"Sexual & Reproductive Health",
	"Contraception & Family Planning",
	"Menstrual Health & PMS",
	"PCOS & Hormonal Disorders",
	"Endometriosis Awareness",
	"Fertility & IVF Support",
	"Maternal Mental Health",
	"Breastfeeding & Postpartum Care",
	"Cervical & Breast Cancer Awareness",
	"Body Positivity & Women's Wellness",
	"Sexually Transmitted Infections (STIs)",
	"Safe Sex Education",
	"Intimate Hygiene & Care",
	"Menopause & Perimenopause Health",
	"Relationship & Emotional Well-being",
	"Sexual Consent & Safety",
}

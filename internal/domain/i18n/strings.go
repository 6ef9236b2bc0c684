package i18n

// Translations maps a dotted message key to its text in one language.
type Translations map[string]string

// T returns the translations for lang. Unknown languages get French.
func T(lang Lang) Translations {
	if lang == EN {
		return translationsEN
	}
	return translationsFR
}

// Get returns the text for key, or the key itself when it is missing so
// gaps show up on the page instead of rendering blank.
func (t Translations) Get(key string) string {
	if s, ok := t[key]; ok {
		return s
	}
	return key
}

var translationsFR = Translations{
	// Navigation
	"nav.about":    "À propos",
	"nav.speakers": "Conférenciers",
	"nav.program":  "Programme",
	"nav.gallery":  "Galerie",
	"nav.contact":  "Contact",
	"nav.lang":     "Langue",
	"lang.fr":      "Français",
	"lang.en":      "English",

	// Sections
	"partners.title": "Avec le soutien de",
	"hero.register":  "S'inscrire",
	"hero.program":   "Voir le programme",
	"about.title":    "À propos du colloque",
	"speakers.title": "Conférenciers invités",
	"program.title":  "Programme",
	"program.empty":  "Le programme sera bientôt annoncé.",
	"program.room":   "Salle",
	"program.day":    "Jour",
	"gallery.title":  "Galerie",
	"contact.title":  "Nous joindre",
	"contact.intro":  "Une question sur le colloque ? Écrivez-nous.",
	"contact.name":   "Nom",
	"contact.email":  "Courriel",
	"contact.body":   "Message",
	"contact.send":   "Envoyer",
	"contact.sent":   "Merci ! Votre message a bien été envoyé.",
	"contact.error":  "Veuillez remplir tous les champs avec une adresse courriel valide.",
	"footer.rights":  "Tous droits réservés.",

	// Program kinds
	"kind.keynote":  "Conférence plénière",
	"kind.panel":    "Table ronde",
	"kind.workshop": "Atelier",
	"kind.session":  "Séance",
	"kind.break":    "Pause",

	// Admin
	"admin.enter":          "Administration",
	"admin.exit":           "Retour au site",
	"admin.title":          "Tableau de bord",
	"admin.program":        "Entrées du programme",
	"admin.messages":       "Messages reçus",
	"admin.messages.empty": "Aucun message.",
	"admin.delete":         "Supprimer",
	"admin.add":            "Ajouter une entrée",
	"admin.add.submit":     "Ajouter",
	"admin.locked":         "Le tableau de bord est verrouillé. Saisissez le mot de passe d'administration.",
	"admin.password":       "Mot de passe",
	"admin.unlock":         "Déverrouiller",
	"admin.unlock.failed":  "Mot de passe incorrect.",
	"admin.invalid":        "Entrée invalide : vérifiez le jour, les heures et les titres.",

	// Form fields
	"field.day":      "Jour (AAAA-MM-JJ)",
	"field.start":    "Début (HH:MM)",
	"field.end":      "Fin (HH:MM)",
	"field.title_fr": "Titre (français)",
	"field.title_en": "Titre (anglais)",
	"field.speaker":  "Intervenant",
	"field.room":     "Salle",
	"field.kind":     "Type",

	// Delete confirmation dialog
	"dialog.delete.title":   "Confirmer la suppression",
	"dialog.delete.body":    "Voulez-vous vraiment supprimer cette entrée du programme ?",
	"dialog.delete.cancel":  "Annuler",
	"dialog.delete.confirm": "Supprimer",

	"tui.hint.public": "ctrl+l : langue · ctrl+c : quitter",
	"tui.hint.button": "ctrl+a : administration",
	"tui.hint.admin":  "échap : retour au site",
}

var translationsEN = Translations{
	// Navigation
	"nav.about":    "About",
	"nav.speakers": "Speakers",
	"nav.program":  "Program",
	"nav.gallery":  "Gallery",
	"nav.contact":  "Contact",
	"nav.lang":     "Language",
	"lang.fr":      "Français",
	"lang.en":      "English",

	// Sections
	"partners.title": "With the support of",
	"hero.register":  "Register",
	"hero.program":   "See the program",
	"about.title":    "About the conference",
	"speakers.title": "Invited speakers",
	"program.title":  "Program",
	"program.empty":  "The program will be announced soon.",
	"program.room":   "Room",
	"program.day":    "Day",
	"gallery.title":  "Gallery",
	"contact.title":  "Contact us",
	"contact.intro":  "A question about the conference? Write to us.",
	"contact.name":   "Name",
	"contact.email":  "Email",
	"contact.body":   "Message",
	"contact.send":   "Send",
	"contact.sent":   "Thank you! Your message has been sent.",
	"contact.error":  "Please fill in every field with a valid email address.",
	"footer.rights":  "All rights reserved.",

	// Program kinds
	"kind.keynote":  "Keynote",
	"kind.panel":    "Panel",
	"kind.workshop": "Workshop",
	"kind.session":  "Session",
	"kind.break":    "Break",

	// Admin
	"admin.enter":          "Admin",
	"admin.exit":           "Back to site",
	"admin.title":          "Dashboard",
	"admin.program":        "Program entries",
	"admin.messages":       "Received messages",
	"admin.messages.empty": "No messages.",
	"admin.delete":         "Delete",
	"admin.add":            "Add an entry",
	"admin.add.submit":     "Add",
	"admin.locked":         "The dashboard is locked. Enter the admin password.",
	"admin.password":       "Password",
	"admin.unlock":         "Unlock",
	"admin.unlock.failed":  "Wrong password.",
	"admin.invalid":        "Invalid entry: check the day, times and titles.",

	// Form fields
	"field.day":      "Day (YYYY-MM-DD)",
	"field.start":    "Start (HH:MM)",
	"field.end":      "End (HH:MM)",
	"field.title_fr": "Title (French)",
	"field.title_en": "Title (English)",
	"field.speaker":  "Speaker",
	"field.room":     "Room",
	"field.kind":     "Kind",

	// Delete confirmation dialog
	"dialog.delete.title":   "Confirm deletion",
	"dialog.delete.body":    "Do you really want to delete this program entry?",
	"dialog.delete.cancel":  "Cancel",
	"dialog.delete.confirm": "Delete",

	"tui.hint.public": "ctrl+l: language · ctrl+c: quit",
	"tui.hint.button": "ctrl+a: admin",
	"tui.hint.admin":  "esc: back to the site",
}

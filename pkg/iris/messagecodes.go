package iris

// messageCodes maps the numeric message codes used by the feed to their
// official descriptions.
var messageCodes = map[int]string{
	2:  "Polizeiliche Ermittlung",
	3:  "Feuerwehreinsatz an der Strecke",
	4:  "Kurzfristiger Personalausfall",
	5:  "Ärztliche Versorgung eines Fahrgastes",
	6:  "Betätigen der Notbremse",
	7:  "Personen im Gleis",
	8:  "Notarzteinsatz am Gleis",
	9:  "Streikauswirkungen",
	10: "Ausgebrochene Tiere im Gleis",
	11: "Unwetter",
	13: "Pass- und Zollkontrolle",
	15: "Beeinträchtigung durch Vandalismus",
	16: "Entschärfung einer Fliegerbombe",
	17: "Beschädigung einer Brücke",
	18: "Umgestürzter Baum im Gleis",
	19: "Unfall an einem Bahnübergang",
	20: "Tiere im Gleis",
	21: "Warten auf weitere Reisende",
	22: "Witterungsbedingte Störung",
	23: "Feuerwehreinsatz auf Bahngelände",
	24: "Verspätung im Ausland",
	25: "Bereitstellung weiterer Wagen",
	26: "Abhängen von Wagen",
	28: "Gegenstände im Gleis",
	29: "Ersatzverkehr mit Bus ist eingerichtet",
	31: "Bauarbeiten",
	32: "Verzögerung beim Ein-/Ausstieg",
	33: "Oberleitungsstörung",
	34: "Signalstörung",
	35: "Streckensperrung",
	36: "Technische Störung am Zug",
	38: "Technische Störung an der Strecke",
	39: "Anhängen von zusätzlichen Wagen",
	40: "Stellwerksstörung/-ausfall",
	41: "Störung an einem Bahnübergang",
	42: "Außerplanmäßige Geschwindigkeitsbeschränkung",
	43: "Verspätung eines vorausfahrenden Zuges",
	44: "Warten auf einen entgegenkommenden Zug",
	45: "Überholung",
	46: "Warten auf freie Einfahrt",
	47: "Verspätete Bereitstellung",
	48: "Verspätung aus vorheriger Fahrt",
	55: "Technische Störung an einem anderen Zug",
	56: "Warten auf Fahrgäste aus einem Bus",
	57: "Zusätzlicher Halt zum Ein-/Ausstieg",
	58: "Umleitung des Zuges",
	59: "Schnee und Eis",
	60: "Reduzierte Geschwindigkeit wegen Sturm",
	61: "Türstörung",
	62: "Behobene technische Störung am Zug",
	63: "Technische Untersuchung am Zug",
	64: "Weichenstörung",
	65: "Erdrutsch",
	66: "Hochwasser",
	70: "WLAN im gesamten Zug nicht verfügbar",
	71: "WLAN in einzelnen Wagen nicht verfügbar",
	72: "Info-/Entertainment nicht verfügbar",
	73: "Heute: Mehrzweckabteil vorne",
	74: "Heute: Mehrzweckabteil hinten",
	75: "Heute: 1. Klasse vorne",
	76: "Heute: 1. Klasse hinten",
	77: "Ohne 1. Klasse",
	79: "Ohne Mehrzweckabteil",
	80: "Abweichende Wagenreihung",
	82: "Mehrere Wagen fehlen",
	83: "Defekte fahrzeugseitige Fahrgastinformation",
	84: "Zug verkehrt richtig gereiht",
	85: "Ein Wagen fehlt",
	86: "Gesamter Zug ohne Reservierung",
	87: "Einzelne Wagen ohne Reservierung",
	88: "Keine Qualitätsmängel",
	89: "Reservierungen sind wieder vorhanden",
	90: "Kein gastronomisches Angebot",
	91: "Fehlende Fahrradbeförderung",
	92: "Eingeschränkte Fahrradbeförderung",
	93: "Keine behindertengerechte Einrichtung",
	94: "Ersatzbewirtschaftung",
	95: "Ohne behindertengerechtes WC",
	96: "Überbesetzung mit Kulanzleistungen",
	97: "Überbesetzung",
	98: "Sonstige Qualitätsmängel",
	99: "Verzögerungen im Betriebsablauf",
}

package medications

func Antipulgas() *Medication {
	return NewPromoted("Antipulgas Premium", 8000, 50,
		"Protección contra pulgas y garrapatas", "Aplicar cada 30 días",
		15, "Oferta de temporada antipulgas")
}

func Desparasitante() *Medication {
	return NewPromoted("Desparasitante Total", 12000, 30,
		"Desparasitante interno de amplio espectro", "Cada 3 meses según peso",
		20, "Campaña de desparasitación")
}

func Vitaminas() *Medication {
	return NewPromoted("Complejo Vitamínico", 15000, 40,
		"Suplemento vitamínico para perros y gatos", "1 tableta diaria",
		10, "Descuento en suplementos")
}

func Antibiotico() *Medication {
	return New("Antibiótico Veterinario", 25000, 20,
		"Antibiótico de amplio espectro", "Cada 12 horas por 7 días")
}

func Analgesico() *Medication {
	return New("Analgésico Canino", 18000, 35,
		"Alivio del dolor e inflamación", "Cada 8 horas según peso")
}

// Catalog devuelve instancias nuevas del catálogo base.
func Catalog() []*Medication {
	return []*Medication{
		Antipulgas(),
		Desparasitante(),
		Vitaminas(),
		Antibiotico(),
		Analgesico(),
	}
}

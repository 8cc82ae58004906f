// internal/catalog/templates.go
package catalog

import (
	"fmt"

	"babybook-core/internal/models"
)

// Age windows are authored in days; months use the 30-day month convention
// shared with the age package.
func days(n int) int   { return n }
func months(n int) int { return n * 30 }

func end(n int) *int { return &n }

type chapterConfig struct {
	chapter   models.Chapter
	templates []models.Template
}

var gestacaoTemplates = []models.Template{
	{
		ID:            "gestacao-descoberta-gravidez",
		Name:          "Descoberta da Gravidez",
		Icon:          "🧪",
		Description:   "Registre o dia do positivo e como tudo começou.",
		Type:          models.TypeFirstTime,
		AgeRangeStart: months(-6),
		AgeRangeEnd:   end(months(-1)),
	},
	{
		ID:            "gestacao-diario-barriga",
		Name:          "Diário da Barriga",
		Icon:          "📅",
		Description:   "Série mensal com fotos e notas da gestação.",
		Type:          models.TypeNote,
		AgeRangeStart: months(-6),
		AgeRangeEnd:   end(months(0)),
		AllowMultiple: true,
		Meta:          models.NoteMeta{SeriesID: "gestacao-diario", Recurrence: "monthly"},
	},
	{
		ID:            "gestacao-historia-nome",
		Name:          "História do Nome",
		Icon:          "📝",
		Description:   "Conte como o nome do bebê foi escolhido.",
		Type:          models.TypeNote,
		AgeRangeStart: months(-3),
		AgeRangeEnd:   end(months(0)),
	},
	{
		ID:            "gestacao-cha-bebe",
		Name:          "Chá de Bebê / Ensaio",
		Icon:          "🎉",
		Description:   "Fotos e memórias do chá de bebê ou ensaio gestante.",
		Type:          models.TypeEvent,
		AgeRangeStart: months(-2),
		AgeRangeEnd:   end(months(0)),
	},
	{
		ID:            "gestacao-nascimento",
		Name:          "Nascimento",
		Icon:          "👶",
		Description:   "O grande dia: parto, detalhes e primeiras emoções.",
		Type:          models.TypeFirstTime,
		AgeRangeStart: days(0),
		AgeRangeEnd:   end(days(7)),
	},
	{
		ID:            "gestacao-chegada-casa",
		Name:          "Chegada em Casa",
		Icon:          "🏠",
		Description:   "Como foi o retorno ao lar com o bebê.",
		Type:          models.TypeFirstTime,
		AgeRangeStart: days(1),
		AgeRangeEnd:   end(months(1)),
	},
	{
		ID:            "gestacao-plano-parto",
		Name:          "Plano de Parto",
		Icon:          "📋",
		Description:   "Preferências e desejos para o nascimento.",
		Type:          models.TypeNote,
		AgeRangeStart: months(-4),
		AgeRangeEnd:   end(months(0)),
		Meta:          models.NoteMeta{Optional: true},
	},
	{
		ID:            "gestacao-lista-maternidade",
		Name:          "Lista da Maternidade",
		Icon:          "🧳",
		Description:   "Checklist do que levar para o hospital.",
		Type:          models.TypeRecord,
		AgeRangeStart: months(-3),
		AgeRangeEnd:   end(months(0)),
		Meta:          models.RecordMeta{Optional: true, Checklist: true},
	},
}

var triagensTemplates = []models.Template{
	{
		ID:            "triagens-teste-pezinho",
		Name:          "Teste do Pezinho",
		Icon:          "🦶",
		Description:   "Registro da coleta e resultado do teste do pezinho.",
		Type:          models.TypeScreening,
		AgeRangeStart: days(3),
		AgeRangeEnd:   end(days(15)),
	},
	{
		ID:            "triagens-teste-orelhinhas",
		Name:          "Teste da Orelhinha",
		Icon:          "👂",
		Description:   "EOA/PEATE: resultado da triagem auditiva neonatal.",
		Type:          models.TypeScreening,
		AgeRangeStart: days(1),
		AgeRangeEnd:   end(days(30)),
	},
	{
		ID:            "triagens-teste-olhinho",
		Name:          "Teste do Olhinho",
		Icon:          "👁️",
		Description:   "Reflexo vermelho: registro e profissional responsável.",
		Type:          models.TypeScreening,
		AgeRangeStart: days(1),
		AgeRangeEnd:   end(days(30)),
	},
	{
		ID:            "triagens-teste-coracaozinho",
		Name:          "Teste do Coraçãozinho",
		Icon:          "❤️",
		Description:   "Oximetria de pulso e orientações recebidas.",
		Type:          models.TypeScreening,
		AgeRangeStart: days(1),
		AgeRangeEnd:   end(days(30)),
	},
	{
		ID:            "triagens-registro-civil",
		Name:          "Registro Civil & Documentos",
		Icon:          "🪪",
		Description:   "Certidão, CPF, Cartão do SUS e outros documentos.",
		Type:          models.TypeRecord,
		AgeRangeStart: days(1),
		AgeRangeEnd:   end(months(2)),
	},
	{
		ID:            "triagens-primeira-foto-documento",
		Name:          "Primeira Foto de Documento",
		Icon:          "📸",
		Description:   "Guarde a primeira foto oficial do bebê.",
		Type:          models.TypeFirstTime,
		AgeRangeStart: days(1),
		AgeRangeEnd:   end(months(2)),
	},
}

var primeirasVezesTemplates = []models.Template{
	{
		ID:            "primeiras-primeira-vez",
		Name:          "Primeira Vez",
		Icon:          "✨",
		Description:   "Use para qualquer primeira vez marcante. Escolha o tipo e conte a história.",
		Type:          models.TypeFirstTime,
		AgeRangeStart: days(0),
		AllowMultiple: true,
		Meta: models.FirstTimeMeta{Categories: []string{
			"Banho", "Sorriso", "Rolamento", "Engatinhar", "Passo", "Palavra",
			"Dente", "Comida", "Som", "Passeio", "Outro",
		}},
	},
	{
		ID:            "primeiras-primeiro-banho",
		Name:          "Primeiro Banho",
		Icon:          "🛁",
		Description:   "Como foi o primeiro banho fora da maternidade.",
		Type:          models.TypeFirstTime,
		AgeRangeStart: days(1),
		AgeRangeEnd:   end(months(1)),
	},
	{
		ID:            "primeiras-primeiro-colo",
		Name:          "Primeiro Colo Fora da Maternidade",
		Icon:          "🤱",
		Description:   "Quem recebeu o bebê primeiro em casa?",
		Type:          models.TypeFirstTime,
		AgeRangeStart: days(1),
		AgeRangeEnd:   end(months(1)),
	},
	{
		ID:            "primeiras-primeiro-sorriso",
		Name:          "Primeiro Sorriso",
		Icon:          "😊",
		Description:   "A primeira vez que o sorriso social apareceu.",
		Type:          models.TypeFirstTime,
		AgeRangeStart: months(1),
		AgeRangeEnd:   end(months(2)),
	},
	{
		ID:            "primeiras-primeiro-passeio",
		Name:          "Primeiro Passeio",
		Icon:          "🚗",
		Description:   "Conte sobre a primeira saída em família.",
		Type:          models.TypeFirstTime,
		AgeRangeStart: months(2),
		AgeRangeEnd:   end(months(3)),
	},
	{
		ID:            "primeiras-primeiro-som",
		Name:          "Primeiro Som / Balbucio",
		Icon:          "🗣️",
		Description:   "Guarde o começo das conversas.",
		Type:          models.TypeFirstTime,
		AgeRangeStart: months(3),
		AgeRangeEnd:   end(months(4)),
	},
	{
		ID:            "primeiras-primeiro-rolamento",
		Name:          "Primeiro Rolamento",
		Icon:          "🔄",
		Description:   "Registro do dia em que rolou sozinho.",
		Type:          models.TypeFirstTime,
		AgeRangeStart: months(4),
		AgeRangeEnd:   end(months(5)),
	},
	{
		ID:            "primeiras-primeiro-dente",
		Name:          "Primeiro Dente",
		Icon:          "🦷",
		Description:   "Quando o primeiro dentinho apareceu.",
		Type:          models.TypeFirstTime,
		AgeRangeStart: months(5),
		AgeRangeEnd:   end(months(6)),
	},
	{
		ID:            "primeiras-primeira-comida",
		Name:          "Primeira Comida",
		Icon:          "🥣",
		Description:   "Introdução alimentar e reações favoritas.",
		Type:          models.TypeFirstTime,
		AgeRangeStart: months(5),
		AgeRangeEnd:   end(months(6)),
	},
	{
		ID:            "primeiras-primeiro-engatinhar",
		Name:          "Primeiro Engatinhar",
		Icon:          "🧎",
		Description:   "O início das explorações pelo chão.",
		Type:          models.TypeFirstTime,
		AgeRangeStart: months(7),
		AgeRangeEnd:   end(months(8)),
	},
	{
		ID:            "primeiras-primeira-palavra",
		Name:          "Primeira Palavra",
		Icon:          "💬",
		Description:   "Qual foi a primeira palavra dita?",
		Type:          models.TypeFirstTime,
		AgeRangeStart: months(8),
		AgeRangeEnd:   end(months(9)),
	},
	{
		ID:            "primeiras-primeiro-passo",
		Name:          "Primeiro Passo",
		Icon:          "👣",
		Description:   "Registre o momento em que começou a andar.",
		Type:          models.TypeFirstTime,
		AgeRangeStart: months(9),
		AgeRangeEnd:   end(months(12)),
	},
	{
		ID:            "primeiras-primeira-viagem",
		Name:          "Primeira Viagem",
		Icon:          "🧳",
		Description:   "Conte sobre a primeira aventura fora de casa.",
		Type:          models.TypeFirstTime,
		AgeRangeStart: months(10),
		AgeRangeEnd:   end(months(12)),
	},
	{
		ID:            "primeiras-amizade-brinquedo",
		Name:          "Primeira Amizade / Brinquedo Favorito",
		Icon:          "🧸",
		Description:   "Registre o brinquedo ou amigo preferido.",
		Type:          models.TypeFirstTime,
		AgeRangeStart: months(6),
		AllowMultiple: true,
		Meta:          models.FirstTimeMeta{Category: "Outro"},
	},
}

var consultasTemplates = []models.Template{
	{
		ID:            "saude-consulta-rn",
		Name:          "Consulta RN — 1ª semana",
		Icon:          "🩺",
		Description:   "Acompanhamento entre 7 e 10 dias de vida.",
		Type:          models.TypeConsultation,
		AgeRangeStart: days(7),
		AgeRangeEnd:   end(days(10)),
	},
	{
		ID:            "saude-consulta-1m",
		Name:          "Consulta 1 mês",
		Icon:          "🩺",
		Description:   "Orientações e avaliação com 1 mês.",
		Type:          models.TypeConsultation,
		AgeRangeStart: months(1),
		AgeRangeEnd:   end(months(1) + days(10)),
	},
	{
		ID:            "saude-consulta-2m",
		Name:          "Consulta 2 meses",
		Icon:          "🩺",
		Description:   "Evolução e recomendações do segundo mês.",
		Type:          models.TypeConsultation,
		AgeRangeStart: months(2),
		AgeRangeEnd:   end(months(2) + days(10)),
	},
	{
		ID:            "saude-consulta-4m",
		Name:          "Consulta 4 meses",
		Icon:          "🩺",
		Description:   "Acompanhamento do quarto mês.",
		Type:          models.TypeConsultation,
		AgeRangeStart: months(4),
		AgeRangeEnd:   end(months(4) + days(10)),
	},
	{
		ID:            "saude-consulta-6m",
		Name:          "Consulta 6 meses",
		Icon:          "🩺",
		Description:   "Metade do primeiro ano e orientações complementares.",
		Type:          models.TypeConsultation,
		AgeRangeStart: months(6),
		AgeRangeEnd:   end(months(6) + days(10)),
	},
	{
		ID:            "saude-consulta-9m",
		Name:          "Consulta 9 meses",
		Icon:          "🩺",
		Description:   "Marcos motores e alimentação.",
		Type:          models.TypeConsultation,
		AgeRangeStart: months(9),
		AgeRangeEnd:   end(months(9) + days(10)),
	},
	{
		ID:            "saude-consulta-12m",
		Name:          "Consulta 12 meses",
		Icon:          "🩺",
		Description:   "Primeiro ano completo e próximos passos.",
		Type:          models.TypeConsultation,
		AgeRangeStart: months(12),
		AgeRangeEnd:   end(months(12) + days(15)),
	},
	{
		ID:            "saude-consulta-18m",
		Name:          "Consulta 18 meses",
		Icon:          "🩺",
		Description:   "Avaliação de linguagem, sono e rotina.",
		Type:          models.TypeConsultation,
		AgeRangeStart: months(18),
		AgeRangeEnd:   end(months(18) + days(15)),
	},
	{
		ID:            "saude-consulta-24m",
		Name:          "Consulta 24 meses",
		Icon:          "🩺",
		Description:   "Fechamento do segundo ano de vida.",
		Type:          models.TypeConsultation,
		AgeRangeStart: months(24),
		AgeRangeEnd:   end(months(24) + days(15)),
	},
	{
		ID:            "saude-consulta-medica",
		Name:          "Consulta Médica",
		Icon:          "🩺",
		Description:   "Registre consultas com pediatra, APS ou especialistas. Inclua motivos e condutas.",
		Type:          models.TypeConsultation,
		AgeRangeStart: days(0),
		AllowMultiple: true,
		Meta:          models.ConsultationMeta{Kinds: []string{"Pediatra", "APS", "Especialista"}},
	},
	{
		ID:            "saude-registro-sono-humor",
		Name:          "Registro de Sono & Humor",
		Icon:          "🌙",
		Description:   "Diário opcional para acompanhar sono e humor semanal.",
		Type:          models.TypeNote,
		AgeRangeStart: days(0),
		AllowMultiple: true,
		Meta:          models.NoteMeta{Optional: true},
	},
	{
		ID:            "saude-consulta-dentista",
		Name:          "Dentista",
		Icon:          "🦷",
		Description:   "Primeira avaliação odontológica (sugestão 8–24 meses).",
		Type:          models.TypeConsultation,
		AgeRangeStart: months(8),
		AgeRangeEnd:   end(months(24)),
		Meta:          models.ConsultationMeta{Optional: true},
	},
}

var vacinasTemplates = []models.Template{
	{
		ID:            "vacina-bcg",
		Name:          "BCG",
		Icon:          "💉",
		Description:   "Ao nascer.",
		Type:          models.TypeVaccine,
		AgeRangeStart: days(0),
		AgeRangeEnd:   end(days(30)),
		Meta:          models.VaccineMeta{Dose: "Única"},
	},
	{
		ID:            "vacina-hepatite-b-nascimento",
		Name:          "Hepatite B (ao nascer)",
		Icon:          "💉",
		Description:   "Dose ao nascer.",
		Type:          models.TypeVaccine,
		AgeRangeStart: days(0),
		AgeRangeEnd:   end(days(30)),
		Meta:          models.VaccineMeta{Dose: "Dose ao nascer"},
	},
	{
		ID:            "vacina-penta-2m",
		Name:          "Penta (DTP/Hib/HB)",
		Icon:          "💉",
		Description:   "Primeira dose aos 2 meses.",
		Type:          models.TypeVaccine,
		AgeRangeStart: months(2),
		AgeRangeEnd:   end(months(2) + days(15)),
		Meta:          models.VaccineMeta{Dose: "1ª dose"},
	},
	{
		ID:            "vacina-polio-vip-2m",
		Name:          "Polio VIP (inativada)",
		Icon:          "💉",
		Description:   "Primeira dose aos 2 meses.",
		Type:          models.TypeVaccine,
		AgeRangeStart: months(2),
		AgeRangeEnd:   end(months(2) + days(15)),
		Meta:          models.VaccineMeta{Dose: "1ª dose"},
	},
	{
		ID:            "vacina-pneumo10-2m",
		Name:          "Pneumo 10",
		Icon:          "💉",
		Description:   "Primeira dose aos 2 meses.",
		Type:          models.TypeVaccine,
		AgeRangeStart: months(2),
		AgeRangeEnd:   end(months(2) + days(15)),
		Meta:          models.VaccineMeta{Dose: "1ª dose"},
	},
	{
		ID:            "vacina-rotavirus-2m",
		Name:          "Rotavírus",
		Icon:          "💉",
		Description:   "Primeira dose aos 2 meses.",
		Type:          models.TypeVaccine,
		AgeRangeStart: months(2),
		AgeRangeEnd:   end(months(2) + days(15)),
		Meta:          models.VaccineMeta{Dose: "1ª dose"},
	},
	{
		ID:            "vacina-meningo-c-3m",
		Name:          "Meningo C",
		Icon:          "💉",
		Description:   "Primeira dose aos 3 meses.",
		Type:          models.TypeVaccine,
		AgeRangeStart: months(3),
		AgeRangeEnd:   end(months(3) + days(15)),
		Meta:          models.VaccineMeta{Dose: "1ª dose"},
	},
	{
		ID:            "vacina-penta-4m",
		Name:          "Penta (Reforço)",
		Icon:          "💉",
		Description:   "Segunda dose aos 4 meses.",
		Type:          models.TypeVaccine,
		AgeRangeStart: months(4),
		AgeRangeEnd:   end(months(4) + days(15)),
		Meta:          models.VaccineMeta{Dose: "2ª dose"},
	},
	{
		ID:            "vacina-polio-vip-4m",
		Name:          "Polio VIP (Reforço)",
		Icon:          "💉",
		Description:   "Segunda dose aos 4 meses.",
		Type:          models.TypeVaccine,
		AgeRangeStart: months(4),
		AgeRangeEnd:   end(months(4) + days(15)),
		Meta:          models.VaccineMeta{Dose: "2ª dose"},
	},
	{
		ID:            "vacina-pneumo10-4m",
		Name:          "Pneumo 10 (Reforço)",
		Icon:          "💉",
		Description:   "Segunda dose aos 4 meses.",
		Type:          models.TypeVaccine,
		AgeRangeStart: months(4),
		AgeRangeEnd:   end(months(4) + days(15)),
		Meta:          models.VaccineMeta{Dose: "2ª dose"},
	},
	{
		ID:            "vacina-rotavirus-4m",
		Name:          "Rotavírus (Reforço)",
		Icon:          "💉",
		Description:   "Segunda dose aos 4 meses.",
		Type:          models.TypeVaccine,
		AgeRangeStart: months(4),
		AgeRangeEnd:   end(months(4) + days(15)),
		Meta:          models.VaccineMeta{Dose: "2ª dose"},
	},
	{
		ID:            "vacina-meningo-c-5m",
		Name:          "Meningo C",
		Icon:          "💉",
		Description:   "Segunda dose aos 5 meses.",
		Type:          models.TypeVaccine,
		AgeRangeStart: months(5),
		AgeRangeEnd:   end(months(5) + days(15)),
		Meta:          models.VaccineMeta{Dose: "2ª dose"},
	},
	{
		ID:            "vacina-penta-6m",
		Name:          "Penta",
		Icon:          "💉",
		Description:   "Terceira dose aos 6 meses.",
		Type:          models.TypeVaccine,
		AgeRangeStart: months(6),
		AgeRangeEnd:   end(months(6) + days(15)),
		Meta:          models.VaccineMeta{Dose: "3ª dose"},
	},
	{
		ID:            "vacina-polio-vip-6m",
		Name:          "Polio VIP",
		Icon:          "💉",
		Description:   "Terceira dose aos 6 meses.",
		Type:          models.TypeVaccine,
		AgeRangeStart: months(6),
		AgeRangeEnd:   end(months(6) + days(15)),
		Meta:          models.VaccineMeta{Dose: "3ª dose"},
	},
	{
		ID:            "vacina-covid-infantil",
		Name:          "Covid-19 Infantil",
		Icon:          "💉",
		Description:   "Conforme calendários do MS (2024).",
		Type:          models.TypeVaccine,
		AgeRangeStart: months(6),
		AgeRangeEnd:   end(months(24)),
		Meta:          models.VaccineMeta{Scheme: "Rotina 2024"},
	},
	{
		ID:            "vacina-febre-amarela-9m",
		Name:          "Febre Amarela",
		Icon:          "💉",
		Description:   "Aos 9 meses (avaliar elegibilidade regional).",
		Type:          models.TypeVaccine,
		AgeRangeStart: months(9),
		AgeRangeEnd:   end(months(10)),
		Meta:          models.VaccineMeta{Regional: true},
	},
	{
		ID:            "vacina-tríplice-viral",
		Name:          "Tríplice Viral (SCR)",
		Icon:          "💉",
		Description:   "Aos 12 meses - Sarampo, Caxumba, Rubéola.",
		Type:          models.TypeVaccine,
		AgeRangeStart: months(12),
		AgeRangeEnd:   end(months(12) + days(15)),
		Meta:          models.VaccineMeta{Dose: "1ª dose"},
	},
	{
		ID:            "vacina-pneumo10-reforco-12m",
		Name:          "Pneumo 10 - Reforço",
		Icon:          "💉",
		Description:   "Reforço aos 12 meses.",
		Type:          models.TypeVaccine,
		AgeRangeStart: months(12),
		AgeRangeEnd:   end(months(12) + days(15)),
		Meta:          models.VaccineMeta{Dose: "Reforço"},
	},
	{
		ID:            "vacina-meningo-c-reforco-12m",
		Name:          "Meningo C - Reforço",
		Icon:          "💉",
		Description:   "Reforço aos 12 meses.",
		Type:          models.TypeVaccine,
		AgeRangeStart: months(12),
		AgeRangeEnd:   end(months(12) + days(15)),
		Meta:          models.VaccineMeta{Dose: "Reforço"},
	},
	{
		ID:            "vacina-hepatite-a-12m",
		Name:          "Hepatite A (1ª dose)",
		Icon:          "💉",
		Description:   "Primeira dose aos 12 meses.",
		Type:          models.TypeVaccine,
		AgeRangeStart: months(12),
		AgeRangeEnd:   end(months(12) + days(15)),
		Meta:          models.VaccineMeta{Dose: "1ª dose"},
	},
	{
		ID:            "vacina-dtp-reforco-15m",
		Name:          "DTP - 1º Reforço",
		Icon:          "💉",
		Description:   "Primeiro reforço aos 15 meses.",
		Type:          models.TypeVaccine,
		AgeRangeStart: months(15),
		AgeRangeEnd:   end(months(15) + days(20)),
		Meta:          models.VaccineMeta{Dose: "1º Reforço"},
	},
	{
		ID:            "vacina-polio-vop-reforco-15m",
		Name:          "Polio VOP - 1º Reforço",
		Icon:          "💉",
		Description:   "Primeiro reforço de Polio oral aos 15 meses.",
		Type:          models.TypeVaccine,
		AgeRangeStart: months(15),
		AgeRangeEnd:   end(months(15) + days(20)),
		Meta:          models.VaccineMeta{Dose: "1º Reforço"},
	},
	{
		ID:            "vacina-tetraviral-varicela-15m",
		Name:          "Tetraviral (SCRV) / Varicela",
		Icon:          "💉",
		Description:   "Aos 15 meses - conforme disponibilidade regional.",
		Type:          models.TypeVaccine,
		AgeRangeStart: months(15),
		AgeRangeEnd:   end(months(15) + days(20)),
		Meta:          models.VaccineMeta{Dose: "1ª dose ou reforço"},
	},
	{
		ID:            "vacina-reforcos-18m",
		Name:          "Avaliar Reforços / Atualizações",
		Icon:          "💉",
		Description:   "Acompanhe esquemas de resgate e atualizações do calendário nacional.",
		Type:          models.TypeVaccine,
		AgeRangeStart: months(18),
		AgeRangeEnd:   end(months(24)),
	},
}

var medidasTemplates = []models.Template{
	{
		ID:            "saude-medidas",
		Name:          "Medidas",
		Icon:          "📏",
		Description:   "Registre peso, altura e perímetro cefálico. Gera o gráfico.",
		Type:          models.TypeMeasurement,
		AgeRangeStart: days(0),
		AllowMultiple: true,
		Meta:          models.MeasurementMeta{},
	},
}

var familiaTemplates = []models.Template{
	{
		ID:            "familia-arvore",
		Name:          "Árvore da Família",
		Icon:          "🌳",
		Description:   "Monte os laços e conexões da família.",
		Type:          models.TypeRecord,
		AgeRangeStart: days(0),
		Meta:          models.RecordMeta{},
	},
	{
		ID:            "familia-primeira-visita",
		Name:          "Primeira Visita",
		Icon:          "👣",
		Description:   "Quem conheceu o bebê primeiro?",
		Type:          models.TypeFirstTime,
		AgeRangeStart: days(1),
		AgeRangeEnd:   end(months(1)),
	},
	{
		ID:            "familia-encontro-avos",
		Name:          "Encontro com Avós / Padrinhos",
		Icon:          "👵",
		Description:   "Registre encontros especiais com avós e padrinhos.",
		Type:          models.TypeEvent,
		AgeRangeStart: days(1),
	},
	{
		ID:            "familia-amigos-brincadeiras",
		Name:          "Amigos & Brincadeiras",
		Icon:          "🧑‍🤝‍🧑",
		Description:   "Momentos com amigos e interações lúdicas.",
		Type:          models.TypeEvent,
		AgeRangeStart: months(3),
		AllowMultiple: true,
	},
	{
		ID:            "familia-foto-familia",
		Name:          "Foto de Família",
		Icon:          "📸",
		Description:   "Faça fotos recorrentes para acompanhar o crescimento.",
		Type:          models.TypeEvent,
		AgeRangeStart: days(0),
		AllowMultiple: true,
	},
}

func buildMesversarioTemplates() []models.Template {
	var items []models.Template

	for month := 1; month <= 24; month++ {
		items = append(items, models.Template{
			ID:            fmt.Sprintf("mesversario-%02d", month),
			Name:          fmt.Sprintf("Mêsversário %d", month),
			Icon:          "🎂",
			Description:   fmt.Sprintf("Celebre o mês %d com fotos e destaques.", month),
			Type:          models.TypeMonthBirthday,
			AgeRangeStart: months(month),
			AgeRangeEnd:   end(months(month) + days(10)),
			AllowMultiple: month > 12,
			Meta:          models.MonthBirthdayMeta{Slot: month, SeriesID: "mesversario"},
		})
	}

	for month := 1; month <= 24; month++ {
		items = append(items, models.Template{
			ID:            fmt.Sprintf("resumo-mes-%02d", month),
			Name:          fmt.Sprintf("Resumo do Mês %d", month),
			Icon:          "🗒️",
			Description:   fmt.Sprintf("Síntese do mês %d: destaques, aprendizagens e galeria.", month),
			Type:          models.TypeNote,
			AgeRangeStart: months(month),
			AgeRangeEnd:   end(months(month) + days(15)),
			Meta:          models.NoteMeta{Slot: month, Section: "resumo"},
		})
	}

	items = append(items,
		models.Template{
			ID:            "mesversario-primeiro-aniversario",
			Name:          "Primeiro Aniversário",
			Icon:          "🎉",
			Description:   "Celebre o primeiro ano de vida.",
			Type:          models.TypeMonthBirthday,
			AgeRangeStart: months(12),
			AgeRangeEnd:   end(months(12) + days(30)),
		},
		models.Template{
			ID:            "mesversario-segundo-aniversario",
			Name:          "Segundo Aniversário",
			Icon:          "🎊",
			Description:   "Registre os 24 meses e as conquistas do segundo ano.",
			Type:          models.TypeMonthBirthday,
			AgeRangeStart: months(24),
			AgeRangeEnd:   end(months(24) + days(30)),
		},
	)

	return items
}

var cartasTemplates = []models.Template{
	{
		ID:            "cartas-boas-vindas",
		Name:          "Carta de Boas-Vindas",
		Icon:          "✉️",
		Description:   "Escreva uma mensagem para os primeiros dias.",
		Type:          models.TypeLetter,
		AgeRangeStart: days(0),
		AgeRangeEnd:   end(months(1)),
	},
	{
		ID:            "cartas-meio-ano",
		Name:          "Carta de Meio Ano",
		Icon:          "💌",
		Description:   "Compartilhe sentimentos aos 6 meses.",
		Type:          models.TypeLetter,
		AgeRangeStart: months(6),
		AgeRangeEnd:   end(months(6) + days(30)),
	},
	{
		ID:            "cartas-1-ano",
		Name:          "Carta de 1 Ano",
		Icon:          "📬",
		Description:   "Conte tudo sobre o primeiro ano de vida.",
		Type:          models.TypeLetter,
		AgeRangeStart: months(12),
		AgeRangeEnd:   end(months(12) + days(30)),
	},
	{
		ID:            "cartas-18-meses",
		Name:          "Carta de 18 Meses",
		Icon:          "🖋️",
		Description:   "Mensagem opcional para um ano e meio.",
		Type:          models.TypeLetter,
		AgeRangeStart: months(18),
		AgeRangeEnd:   end(months(18) + days(30)),
		Meta:          models.LetterMeta{Optional: true},
	},
	{
		ID:            "cartas-2-anos",
		Name:          "Carta de 2 Anos",
		Icon:          "📝",
		Description:   "Registre memórias do segundo ano.",
		Type:          models.TypeLetter,
		AgeRangeStart: months(24),
		AgeRangeEnd:   end(months(24) + days(30)),
	},
	{
		ID:            "cartas-futuro",
		Name:          "Carta para o Futuro",
		Icon:          "📦",
		Description:   "Agende para abrir no futuro em uma idade especial.",
		Type:          models.TypeLetter,
		AgeRangeStart: months(0),
		AllowMultiple: true,
		Meta:          models.LetterMeta{FutureDelivery: true},
	},
}

var arteTemplates = []models.Template{
	{
		ID:            "arte-primeiro-rabisco",
		Name:          "Primeiro Rabisco",
		Icon:          "🖍️",
		Description:   "Guarde o primeiro desenho ou rabisco.",
		Type:          models.TypeArt,
		AgeRangeStart: months(9),
		AgeRangeEnd:   end(months(12)),
	},
	{
		ID:            "arte-colagem",
		Name:          "Colagem / Pintura de Dedo",
		Icon:          "🎨",
		Description:   "Experimente tinta, texturas e bagunça criativa.",
		Type:          models.TypeArt,
		AgeRangeStart: months(12),
		AgeRangeEnd:   end(months(18)),
	},
	{
		ID:            "arte-formas-simples",
		Name:          "Desenho com Formas Simples",
		Icon:          "🟦",
		Description:   "Primeiros círculos, traços e formas básicas.",
		Type:          models.TypeArt,
		AgeRangeStart: months(18),
		AgeRangeEnd:   end(months(24)),
	},
	{
		ID:            "arte-autorretrato",
		Name:          "Meu Primeiro Autorretrato",
		Icon:          "🧑‍🎨",
		Description:   "Registre a primeira tentativa de desenhar a si mesmo.",
		Type:          models.TypeArt,
		AgeRangeStart: months(24),
		AgeRangeEnd:   end(months(30)),
	},
	{
		ID:            "arte-escola",
		Name:          "Arte da Escola",
		Icon:          "🏫",
		Description:   "Coleções criadas na escola ou atividades guiadas.",
		Type:          models.TypeArt,
		AgeRangeStart: months(18),
		AllowMultiple: true,
	},
	{
		ID:            "arte-livre",
		Name:          "Arte Livre",
		Icon:          "🎭",
		Description:   "Qualquer criação artística e expressão criativa.",
		Type:          models.TypeArt,
		AgeRangeStart: months(0),
		AllowMultiple: true,
	},
}

var datasEspeciaisTemplates = []models.Template{
	{
		ID:            "datas-primeiro-natal",
		Name:          "Primeiro Natal",
		Icon:          "🎄",
		Description:   "Como foi celebrar o primeiro Natal em família.",
		Type:          models.TypeEvent,
		AgeRangeStart: months(0),
	},
	{
		ID:            "datas-primeira-pascoa",
		Name:          "Primeira Páscoa",
		Icon:          "🐰",
		Description:   "Doces, orelhas e tradições de Páscoa.",
		Type:          models.TypeEvent,
		AgeRangeStart: months(0),
	},
	{
		ID:            "datas-festas-populares",
		Name:          "Carnaval / São João / Batizado",
		Icon:          "🎉",
		Description:   "Celebrações culturais, religiosas ou tradicionais.",
		Type:          models.TypeEvent,
		AgeRangeStart: months(0),
		AllowMultiple: true,
	},
	{
		ID:            "datas-viagem-marcante",
		Name:          "Viagem Marcante",
		Icon:          "✈️",
		Description:   "Primeira grande viagem ou passeio inesquecível.",
		Type:          models.TypeEvent,
		AgeRangeStart: months(6),
		AllowMultiple: true,
	},
	{
		ID:            "datas-evento-custom",
		Name:          "Evento Especial",
		Icon:          "⭐",
		Description:   "Qualquer outra data afetiva relevante.",
		Type:          models.TypeEvent,
		AgeRangeStart: months(0),
		AllowMultiple: true,
		Meta:          models.EventMeta{Custom: true},
	},
}

var pensamentosTemplates = []models.Template{
	{
		ID:            "pensamentos-momento-livre",
		Name:          "Momento Livre",
		Icon:          "📝",
		Description:   "Notas rápidas com título, texto e mídia.",
		Type:          models.TypeNote,
		AgeRangeStart: days(0),
		AllowMultiple: true,
		Meta:          models.NoteMeta{Default: true},
	},
	{
		ID:            "pensamentos-dia",
		Name:          "Pensamento do Dia",
		Icon:          "💡",
		Description:   "Frase ou lembrança do dia.",
		Type:          models.TypeNote,
		AgeRangeStart: days(0),
		AllowMultiple: true,
	},
	{
		ID:            "pensamentos-lembrete-medico",
		Name:          "Lembrete Médico",
		Icon:          "⏰",
		Description:   "Use para acompanhar orientações ou lembretes de saúde.",
		Type:          models.TypeRecord,
		AgeRangeStart: days(0),
		Meta:          models.RecordMeta{},
	},
	{
		ID:            "pensamentos-humor-dia",
		Name:          "Humor do Dia",
		Icon:          "🙂",
		Description:   "Registre o humor com um controle de emojis.",
		Type:          models.TypeNote,
		AgeRangeStart: days(0),
		AllowMultiple: true,
		Meta:          models.NoteMeta{Input: "emoji-slider"},
	},
}

var escolaTemplates = []models.Template{
	{
		ID:            "escola-primeiro-dia",
		Name:          "Primeiro Dia na Escola / Creche",
		Icon:          "🏫",
		Description:   "Como foi a adaptação e quem participou.",
		Type:          models.TypeFirstTime,
		AgeRangeStart: months(6),
	},
	{
		ID:            "escola-primeiras-producoes",
		Name:          "Primeiras Produções",
		Icon:          "🖍️",
		Description:   "Artes, atividades ou registros escolares.",
		Type:          models.TypeArt,
		AgeRangeStart: months(12),
		AllowMultiple: true,
	},
	{
		ID:            "escola-apresentacao",
		Name:          "Apresentação / Festa da Escola",
		Icon:          "🎭",
		Description:   "Eventos especiais organizados pela escola.",
		Type:          models.TypeEvent,
		AgeRangeStart: months(12),
		AllowMultiple: true,
	},
	{
		ID:            "escola-amigos",
		Name:          "Amigos da Escola",
		Icon:          "🧑‍🤝‍🧑",
		Description:   "Registre os amigos e histórias da escola.",
		Type:          models.TypeEvent,
		AgeRangeStart: months(12),
		AllowMultiple: true,
	},
	{
		ID:            "escola-bilhetes",
		Name:          "Bilhetes / Anexos",
		Icon:          "📎",
		Description:   "Documentos, comunicados e anexos importantes.",
		Type:          models.TypeRecord,
		AgeRangeStart: months(12),
		AllowMultiple: true,
		Meta:          models.RecordMeta{},
	},
}

// saudeTemplates groups consultations, vaccines and measurements into the
// "Saúde & Crescimento" chapter, keeping the authored sub-order.
func saudeTemplates() []models.Template {
	var out []models.Template
	out = append(out, consultasTemplates...)
	out = append(out, vacinasTemplates...)
	out = append(out, medidasTemplates...)
	return out
}

var chapterConfigs = []chapterConfig{
	{
		chapter: models.Chapter{
			ID:          "1",
			Name:        "Gestação & Chegada",
			Description: "Do positivo ao retorno para casa.",
			Objective:   "Registrar toda a jornada da gestação aos primeiros dias.",
			Viewer:      "Linha do Tempo + Story",
			Icon:        "🤰",
			Color:       "#A7F3D0",
		},
		templates: gestacaoTemplates,
	},
	{
		chapter: models.Chapter{
			ID:          "2",
			Name:        "Triagens do RN & Primeiros Registros",
			Description: "Centralize os testes neonatais e burocracias iniciais.",
			Objective:   "Garantir exames neonatais e documentos essenciais em dia.",
			Viewer:      "Lista + Linha do Tempo",
			Icon:        "🩺",
			Color:       "#FED7D7",
		},
		templates: triagensTemplates,
	},
	{
		chapter: models.Chapter{
			ID:          "3",
			Name:        "Primeiras Vezes & Descobertas",
			Description: "Checklist dos marcos clássicos do desenvolvimento.",
			Objective:   "Celebrar cada estreia e acompanhar os marcos.",
			Viewer:      "Checklist + Lista",
			Icon:        "✨",
			Color:       "#FDE68A",
		},
		templates: primeirasVezesTemplates,
	},
	{
		chapter: models.Chapter{
			ID:          "4",
			Name:        "Saúde & Crescimento",
			Description: "Consultas, vacinas, medidas e registros de saúde.",
			Objective:   "Manter o acompanhamento em dia com o PNI e a puericultura brasileira.",
			Viewer:      "Dashboard + Lista",
			Icon:        "📈",
			Color:       "#BFDBFE",
		},
		templates: saudeTemplates(),
	},
	{
		chapter: models.Chapter{
			ID:          "5",
			Name:        "Família & Visitas",
			Description: "Laços, encontros e lembranças com quem ama.",
			Objective:   "Mapear afetos e visitas marcantes.",
			Viewer:      "Grade de Pessoas + Lista",
			Icon:        "👪",
			Color:       "#FBCFE8",
		},
		templates: familiaTemplates,
	},
	{
		chapter: models.Chapter{
			ID:          "6",
			Name:        "Mêsversários & Resumos",
			Description: "Celebrações mensais e sínteses do desenvolvimento.",
			Objective:   "Celebrar e resumir cada mês vivido.",
			Viewer:      "Série / Grade + Lista",
			Icon:        "🎂",
			Color:       "#DDD6FE",
		},
		templates: buildMesversarioTemplates(),
	},
	{
		chapter: models.Chapter{
			ID:          "7",
			Name:        "Cartas & Cápsulas do Tempo",
			Description: "Mensagens especiais para diferentes idades.",
			Objective:   "Registrar cartas e cápsulas para o futuro.",
			Viewer:      "Leitura",
			Icon:        "✉️",
			Color:       "#FECACA",
		},
		templates: cartasTemplates,
	},
	{
		chapter: models.Chapter{
			ID:          "8",
			Name:        "Arte & Desenhos",
			Description: "Criações e registros visuais.",
			Objective:   "Guardar produções artísticas e momentos criativos.",
			Viewer:      "Galeria",
			Icon:        "🎨",
			Color:       "#C7D2FE",
		},
		templates: arteTemplates,
	},
	{
		chapter: models.Chapter{
			ID:          "9",
			Name:        "Datas Especiais",
			Description: "Calendário afetivo com celebrações marcantes.",
			Objective:   "Registrar datas comemorativas e eventos inesquecíveis.",
			Viewer:      "Linha do Tempo",
			Icon:        "📆",
			Color:       "#FDE2E2",
		},
		templates: datasEspeciaisTemplates,
	},
	{
		chapter: models.Chapter{
			ID:          "10",
			Name:        "Pensamentos & Observações",
			Description: "Notas rápidas, lembretes e reflexões.",
			Objective:   "Centralizar ideias, lembretes e registros diários.",
			Viewer:      "Lista",
			Icon:        "💭",
			Color:       "#E0E7FF",
		},
		templates: pensamentosTemplates,
	},
	{
		chapter: models.Chapter{
			ID:          "11",
			Name:        "Escola & Aprendizados",
			Description: "Socialização e primeiras atividades guiadas.",
			Objective:   "Acompanhar rotina escolar e produções.",
			Viewer:      "Linha do Tempo + Lista",
			Icon:        "🏫",
			Color:       "#D1FAE5",
		},
		templates: escolaTemplates,
	},
	{
		chapter: models.Chapter{
			ID:          "12",
			Name:        "Capítulos Custom",
			Description: "Espaço para momentos personalizados.",
			Objective:   "Criar capítulos sob medida para a família.",
			Viewer:      "Customizável",
			Icon:        "🧩",
			Color:       "#FEF3C7",
		},
		templates: nil,
	},
}

package protocols

import (
	"fmt"
	"proacolhe-service/internal/pkg/exceptions"
	"proacolhe-service/internal/pkg/utils"
	"strings"
	"time"
)

const (
	unitsPerKg          = 50000
	benzathineDoseLimit = 2400000

	congenitalDiagnosis = "Sífilis Congênita"
	acquiredDiagnosis   = "Sífilis Adquirida"
)

// Evaluate maps the biometric and clinical input onto one entry of the
// treatment table. It never mutates in.
func Evaluate(in *Input) (*Result, error) {
	if in == nil || in.WeightKg <= 0 || in.HeightM <= 0 || strings.TrimSpace(in.BirthDate) == "" {
		return nil, exceptions.ErrProtocolInputIncomplete(nil)
	}

	birth, err := utils.ParseDate(strings.TrimSpace(in.BirthDate))
	if err != nil {
		return nil, exceptions.ErrProtocolInputIncomplete(err)
	}

	ref := in.ReferenceTime
	if ref.IsZero() {
		ref = time.Now().UTC()
	}
	if utils.IsFutureDate(birth, ref) {
		return nil, exceptions.ErrProtocolInputIncomplete(fmt.Errorf("birth date %s is after reference date", in.BirthDate))
	}

	result := &Result{
		Pathway:  in.Pathway,
		Warnings: make([]string, 0, 4),
		BMI:      BMI(in.WeightKg, in.HeightM),
		Age:      DetailedAge(birth, ref),
	}

	switch in.Pathway {
	case PathwayCongenital:
		evaluateCongenital(in.WeightKg, in.Congenital, result)
	case PathwayAcquired:
		evaluateAcquired(in.Acquired, result)
	default:
		return nil, exceptions.ErrInvalidPathway(fmt.Errorf("unknown pathway %q", in.Pathway))
	}

	return result, nil
}

func evaluateCongenital(weightKg float64, in CongenitalInput, result *Result) {
	dose := unitsPerKg * weightKg
	doseText := formatUnits(dose)

	principalCID := strings.TrimSpace(in.PrincipalCID)
	if principalCID == "" {
		principalCID = DefaultCongenitalInput().PrincipalCID
	}
	result.SuggestedCID = principalCID

	var penicillin, route, frequency, course string
	switch {
	case principalCID == "A50.4" || in.CSFAltered:
		result.ProtocolID = ProtocolCrystalline10Days
		penicillin, route, course = "Cristalina", "IV", "10 dias"
		frequency = "Q8h (a cada 8 horas)"
		if result.Age.DaysTotal <= 7 {
			frequency = "Q12h (a cada 12 horas)"
		}
		result.Duration = "10 a 14 Dias (Uso Diário Hospitalar)"
		result.Warnings = append(result.Warnings,
			"A frequência foi ajustada pela idade pós-natal para segurança terapêutica.",
			"Monitoramento obrigatório: VDRL mensal no 1º ano.",
		)
		result.Notes = fmt.Sprintf("Protocolo Neurosífilis/LCR Alterado. Dose calculada: %s UI/dose.", doseText)

	case in.ClinicalSigns || !in.EvaluationNormal:
		result.ProtocolID = ProtocolProcaine10Days
		penicillin, route, course = "Procaína", "IM", "10 dias"
		frequency = "Q24h (a cada 24 horas)"
		result.Duration = "10 a 14 Dias (Uso Diário Hospitalar)"
		result.Warnings = append(result.Warnings,
			"ATENÇÃO: A interrupção do tratamento por > 24h exige reinício do ciclo.",
		)
		result.Notes = fmt.Sprintf("Protocolo Sintomático/Avaliação Incompleta. Dose calculada: %s UI/dose.", doseText)

	case !in.MaternalTreatmentAdequate:
		result.ProtocolID = ProtocolBenzathineSingle
		penicillin, route, course = "Benzatina", "IM", "Dose Única"
		frequency = "Dose Única"
		result.Duration = "Imediato (Dose Única)"
		if dose > benzathineDoseLimit {
			doseText = formatUnits(benzathineDoseLimit)
			result.Notes = "Dose ajustada para teto de 2.400.000 UI."
		} else {
			result.Notes = fmt.Sprintf("Profilaxia (Mãe inadequada/Não tratada). Dose calculada: %s UI.", doseText)
		}

	default:
		result.ProtocolID = ProtocolFollowUpOnly
		result.Medication = "N/A - Seguimento"
		result.Dosage = "Seguimento clínico apenas. VDRL 1, 3, 6, 12, 18 meses."
		result.Duration = "Seguimento Clínico"
		return
	}

	result.Medication = "Penicilina G " + penicillin
	result.Dosage = fmt.Sprintf("%s UI/kg/dose, %s, %s por %s", doseText, route, frequency, course)
}

func evaluateAcquired(in AcquiredInput, result *Result) {
	stage := strings.TrimSpace(in.Stage)
	if stage == "" {
		stage = StageRecent
	}

	switch {
	case in.Pregnant:
		result.SuggestedCID = "O98.1"
	case stage == StageRecent:
		result.SuggestedCID = "A51"
	default:
		result.SuggestedCID = "A52"
	}

	if in.PenicillinAllergy {
		result.ProtocolID = ProtocolAllergy
		result.Medication = "Alergia Confirmada"
		result.Duration = "15 a 30 dias (dependendo do estágio)"
		result.Dosage = "Doxiciclina 100mg, VO, 12/12h por 15 dias (ou 30 dias se tardia)."
		if in.Pregnant {
			result.Dosage = "ENCAMINHAR PARA DESSENSIBILIZAÇÃO (Doxiciclina contraindicada)"
		}
		result.Warnings = append(result.Warnings,
			"Paciente alérgico. Penicilina é a primeira escolha. Avaliar dessensibilização.",
		)
		result.Notes = "Protocolo alternativo ou dessensibilização requerida."
	} else {
		result.Medication = "Penicilina G Benzatina"
		if stage == StageRecent {
			result.ProtocolID = ProtocolAcquiredRecent
			result.Dosage = "2.400.000 UI, IM, Dose Única (1.200.000 UI em cada glúteo)."
			result.Duration = "1 Semana (Dose Única)"
			result.Notes = "Sífilis Primária, Secundária ou Latente Recente (< 1 ano)."
		} else {
			result.ProtocolID = ProtocolAcquiredLate
			result.Dosage = "7.200.000 UI total. Esquema: 3 doses de 2.400.000 UI, IM, com intervalo de 1 semana."
			result.Duration = "3 Semanas (1 dose a cada 7 dias)"
			result.Notes = "Sífilis Latente Tardia (> 1 ano), Terciária ou Indeterminada."
			result.Warnings = append(result.Warnings,
				"O intervalo entre as doses não deve exceder 9 dias (idealmente 7 dias).",
				"Caso o intervalo ultrapasse 9 dias, o esquema deve ser reiniciado.",
			)
		}
		result.Warnings = append(result.Warnings, "Reação de Jarisch-Herxheimer pode ocorrer nas primeiras 24h.")
	}

	result.Warnings = append(result.Warnings, "Notificação Compulsória: Preencher Ficha SINAN (Campo 40).")
	if in.Pregnant {
		result.Warnings = append(result.Warnings, "Tratamento do parceiro é essencial para evitar reinfecção.")
	}
}

// ApplyToDraft writes result into a consultation draft. Existing notes are
// kept and the generated block is appended after a blank line.
func ApplyToDraft(in *Input, result *Result, draft Draft) Draft {
	applied := draft
	applied.Prescription.Medication = result.Medication
	applied.Prescription.Dosage = result.Dosage

	label, description := "SC", congenitalDiagnosis
	if result.Pathway == PathwayAcquired {
		label, description = "Adulto", acquiredDiagnosis
	}
	applied.Diagnosis.CID = result.SuggestedCID
	applied.Diagnosis.Description = description

	var sb strings.Builder
	if draft.Notes != "" {
		sb.WriteString(draft.Notes)
		sb.WriteString("\n\n")
	}
	fmt.Fprintf(&sb, "[Biometria] Peso: %skg | Altura: %sm | IMC: %s\n",
		formatMeasure(in.WeightKg), formatMeasure(in.HeightM), result.BMI)
	fmt.Fprintf(&sb, "[Idade] %s\n", result.Age.Text)
	fmt.Fprintf(&sb, "[Protocolo Automático - %s]\n", label)
	sb.WriteString(result.Notes)
	fmt.Fprintf(&sb, "\nDuração Estimada: %s", result.Duration)
	if len(result.Warnings) > 0 {
		sb.WriteString("\nALERTAS:\n")
		sb.WriteString(strings.Join(result.Warnings, "\n"))
	}
	applied.Notes = sb.String()

	return applied
}

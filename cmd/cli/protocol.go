package main

import (
	"fmt"
	"io"
	"proacolhe-service/internal/app/services/core/protocols"
	"proacolhe-service/internal/pkg/utils"
	"strings"

	"github.com/spf13/cobra"
)

// biometricFlags are shared by both pathway subcommands.
type biometricFlags struct {
	weightKg      float64
	heightM       float64
	birthDate     string
	referenceDate string
}

func (f *biometricFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&f.weightKg, "weight", 0, "weight in kilograms")
	cmd.Flags().Float64Var(&f.heightM, "height", 0, "height in meters")
	cmd.Flags().StringVar(&f.birthDate, "birth-date", "", "birth date as YYYY-MM-DD")
	cmd.Flags().StringVar(&f.referenceDate, "reference-date", "", "date ages are measured against, defaults to today")
}

func (f *biometricFlags) input(pathway protocols.Pathway) (*protocols.Input, error) {
	in := &protocols.Input{
		Pathway:   pathway,
		WeightKg:  f.weightKg,
		HeightM:   f.heightM,
		BirthDate: f.birthDate,
	}
	if f.referenceDate != "" {
		ref, err := utils.ParseDate(f.referenceDate)
		if err != nil {
			return nil, fmt.Errorf("invalid --reference-date: %w", err)
		}
		in.ReferenceTime = ref
	}
	return in, nil
}

func newProtocolCmd(app *cliApp) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "protocol",
		Short: "Run the treatment protocol calculator offline",
	}
	cmd.AddCommand(
		newProtocolCongenitalCmd(app),
		newProtocolAcquiredCmd(app),
		newProtocolReferenceCmd(app),
	)
	return cmd
}

func newProtocolCongenitalCmd(app *cliApp) *cobra.Command {
	var biometrics biometricFlags
	congenital := protocols.DefaultCongenitalInput()

	cmd := &cobra.Command{
		Use:   "congenital",
		Short: "Evaluate the congenital syphilis pathway",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := biometrics.input(protocols.PathwayCongenital)
			if err != nil {
				return err
			}
			in.Congenital = congenital

			result, err := protocols.Evaluate(in)
			if err != nil {
				return err
			}
			printResult(app.out, result)
			return nil
		},
	}

	biometrics.register(cmd)
	cmd.Flags().StringVar(&congenital.PrincipalCID, "cid", congenital.PrincipalCID, "principal CID")
	cmd.Flags().BoolVar(&congenital.CSFAltered, "csf-altered", congenital.CSFAltered, "cerebrospinal fluid altered")
	cmd.Flags().BoolVar(&congenital.ClinicalSigns, "clinical-signs", congenital.ClinicalSigns, "clinical signs present")
	cmd.Flags().BoolVar(&congenital.MaternalTreatmentAdequate, "maternal-treatment-adequate", congenital.MaternalTreatmentAdequate, "maternal treatment was adequate")
	cmd.Flags().BoolVar(&congenital.EvaluationNormal, "evaluation-normal", congenital.EvaluationNormal, "complementary evaluation was normal")
	return cmd
}

func newProtocolAcquiredCmd(app *cliApp) *cobra.Command {
	var biometrics biometricFlags
	var acquired protocols.AcquiredInput

	cmd := &cobra.Command{
		Use:   "acquired",
		Short: "Evaluate the acquired syphilis pathway",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := biometrics.input(protocols.PathwayAcquired)
			if err != nil {
				return err
			}
			acquired.Stage = strings.ToLower(strings.TrimSpace(acquired.Stage))
			switch acquired.Stage {
			case protocols.StageRecent, protocols.StageLate, protocols.StageIndeterminate:
			default:
				return fmt.Errorf("invalid --stage %q: expected %s, %s or %s",
					acquired.Stage, protocols.StageRecent, protocols.StageLate, protocols.StageIndeterminate)
			}
			in.Acquired = acquired

			result, err := protocols.Evaluate(in)
			if err != nil {
				return err
			}
			printResult(app.out, result)
			return nil
		},
	}

	biometrics.register(cmd)
	cmd.Flags().StringVar(&acquired.Stage, "stage", protocols.StageRecent, "clinical stage: recente, tardia or indeterminada")
	cmd.Flags().BoolVar(&acquired.Pregnant, "pregnant", false, "patient is pregnant")
	cmd.Flags().BoolVar(&acquired.PenicillinAllergy, "penicillin-allergy", false, "confirmed penicillin allergy")
	return cmd
}

func newProtocolReferenceCmd(app *cliApp) *cobra.Command {
	return &cobra.Command{
		Use:   "reference",
		Short: "Print the treatment reference guide",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			guide := protocols.Reference()
			fmt.Fprintf(app.out, "%s\n%s\n", guide.Title, guide.Source)
			for _, section := range guide.Sections {
				fmt.Fprintf(app.out, "\n%s\n", section.Title)
				if section.Description != "" {
					fmt.Fprintln(app.out, section.Description)
				}
				fmt.Fprintf(app.out, "%s:\n", section.Heading)
				for _, regimen := range section.Regimens {
					fmt.Fprintf(app.out, "  - %s: %s\n", regimen.Criterion, regimen.Treatment)
				}
			}
		},
	}
}

func printResult(out io.Writer, result *protocols.Result) {
	fmt.Fprintf(out, "Protocolo:    %s\n", result.ProtocolID)
	fmt.Fprintf(out, "Medicação:    %s\n", result.Medication)
	fmt.Fprintf(out, "Posologia:    %s\n", result.Dosage)
	fmt.Fprintf(out, "Duração:      %s\n", result.Duration)
	fmt.Fprintf(out, "CID sugerido: %s\n", result.SuggestedCID)
	fmt.Fprintf(out, "IMC:          %s\n", result.BMI)
	fmt.Fprintf(out, "Idade:        %s\n", result.Age.Text)
	if result.Notes != "" {
		fmt.Fprintf(out, "Observações:  %s\n", result.Notes)
	}
	if len(result.Warnings) > 0 {
		fmt.Fprintf(out, "Alertas:\n  - %s\n", strings.Join(result.Warnings, "\n  - "))
	}
}

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/sis-intake-server/internal/catalog"
	"github.com/sis-intake-server/internal/domain"
	"github.com/sis-intake-server/internal/session"
	"github.com/sis-intake-server/pkg/textgen"
)

// Delimiters the generation service is instructed to emit, and the fallback
// texts used when a section is missing from its response.
const (
	measuresDelimiter = "###MAẞNAHMEN###"
	guideDelimiter    = "###SPICKZETTEL###"

	fallbackSIS      = "Fehler beim Generieren der SIS."
	fallbackMeasures = "Fehler beim Generieren der Maßnahmen."
	fallbackGuide    = "Fehler beim Generieren des Spickzettels."
)

// RawDocuments is the deterministic, non-generated document assembly.
type RawDocuments struct {
	SIS      string `json:"sis"`
	Measures string `json:"measures"`
}

// GeneratedDocuments is the three-part generated output.
type GeneratedDocuments struct {
	SIS      string `json:"sis"`
	Measures string `json:"measures"`
	Guide    string `json:"guide"`
}

// DocumentService assembles intake documents and drives the generation
// boundary.
type DocumentService struct {
	logger    *logrus.Logger
	catalog   *catalog.Catalog
	generator textgen.Generator
}

// NewDocumentService creates a document service. The generator may be nil, in
// which case only raw assembly is available.
func NewDocumentService(logger *logrus.Logger, cat *catalog.Catalog, gen textgen.Generator) *DocumentService {
	return &DocumentService{logger: logger, catalog: cat, generator: gen}
}

// BuildRaw assembles the plain-text documents from the session state alone:
// a header of client, diagnoses and cave notes, then one line per checked
// item. Measures go to their own document; gateways and unresolvable
// identifiers are skipped.
func (d *DocumentService) BuildRaw(sess *session.Session) RawDocuments {
	var sisLines, measureLines []string

	name := sess.Client.Name
	if name == "" {
		name = "Unbekannt"
	}
	diagStr := strings.Join(sess.Client.Diagnoses, ", ")
	if diagStr == "" {
		diagStr = "Keine angegeben"
	}
	caveStr := strings.Join(sess.Client.Cave, ", ")
	if caveStr == "" {
		caveStr = "Keine"
	}
	sisLines = append(sisLines,
		"KLIENT: "+name,
		"DIAGNOSEN: "+diagStr,
		"CAVE: "+caveStr,
	)

	sess.Selections.Range(func(id domain.ItemID, rec domain.SelectionRecord) bool {
		if !rec.Checked || id.Gateway {
			return true
		}
		item, found := d.catalog.Resolve(id)
		if !found {
			return true
		}
		line := fmt.Sprintf("- [%s] %s", strings.ToUpper(string(id.Area)), item.Name)
		if len(rec.SubTags) > 0 {
			line += " | Details: " + strings.Join(rec.SubTags, ", ")
		}
		if rec.DetailVal != "" {
			line += " | Status: " + rec.DetailVal
		}
		if id.Category == domain.CategoryMeasure {
			measureLines = append(measureLines, line)
		} else {
			sisLines = append(sisLines, line)
		}
		return true
	})

	return RawDocuments{
		SIS:      strings.Join(sisLines, "\n"),
		Measures: strings.Join(measureLines, "\n"),
	}
}

// buildContext renders the checked selections as prompt context lines.
func (d *DocumentService) buildContext(sess *session.Session) string {
	var b strings.Builder
	sess.Selections.Range(func(id domain.ItemID, rec domain.SelectionRecord) bool {
		if !rec.Checked {
			return true
		}
		item, found := d.catalog.Resolve(id)
		if !found {
			return true
		}
		fmt.Fprintf(&b, "- %s (%s) %s\n", item.Name, strings.Join(rec.SubTags, ", "), rec.DetailVal)
		return true
	})
	return b.String()
}

// EnhancePrompt builds the narrative generation prompt with the strict style
// rules the nursing documentation requires. Prompt assembly is separate from
// generation so callers can release the session lock before the external
// round trip.
func (d *DocumentService) EnhancePrompt(sess *session.Session) string {
	diagStr := strings.Join(sess.Client.Diagnoses, ", ")
	caveStr := strings.Join(sess.Client.Cave, ", ")

	var ctx strings.Builder
	fmt.Fprintf(&ctx, "KLIENT: %s\nDIAGNOSEN: %s\nCAVE: %s\n\nEingaben aus der Erhebung:\n", sess.Client.Name, diagStr, caveStr)
	ctx.WriteString(d.buildContext(sess))

	return fmt.Sprintf(`Erstelle eine professionelle SIS (Strukturierte Informationssammlung) und einen daraus resultierenden Maßnahmenplan.

STRENGE REGELN FÜR DEN SCHREIBSTIL:
1. NUTZE KEINE ICH-FORM (nicht "Ich möchte", nicht "Ich kann").
2. NUTZE KEINE WÖRTLICHE REDE (keine Zitate des Klienten).
3. NUTZE PROFESSIONELLE PFLEGEFACHSPRACHE (narrativ, beschreibend, objektiv).
4. Schreibe in der dritten Person (z.B. "Der Klient benötigt...", "Es besteht eine Gefährdung hinsichtlich...") oder unpersönlich.
5. Fokus auf Ressourcen und konkrete Defizite.

STRUKTUR DER ANTWORT (NUTZE DIESE TRENNER):
1. NARRATIVE SIS:
   Formuliere für jedes Themenfeld (TF1-TF6) einen zusammenhängenden fachlichen Text basierend auf den Eingaben.

%s
2. MAẞNAHMENPLAN:
   Leite aus den Erkenntnissen der SIS konkrete, zielgerichtete pflegerische Interventionen ab.

%s
3. PFLEGE-SPICKZETTEL (Kurzinfos für die Schicht):
   GEFAHR/CAVE:
   VITAL & MEDIS:
   HILFSMITTEL:
   KOMMUNIKATION:
   RESSOURCEN:

DATENKONTEXT:
%s`, measuresDelimiter, guideDelimiter, ctx.String())
}

// splitGenerated splits one response into the three documents along the
// delimiters. Missing or empty sections fall back to fixed error texts so the
// output shape is always complete.
func splitGenerated(text string) GeneratedDocuments {
	parts := strings.SplitN(text, measuresDelimiter, 2)
	sis := strings.TrimSpace(parts[0])
	rest := ""
	if len(parts) > 1 {
		rest = parts[1]
	}
	subParts := strings.SplitN(rest, guideDelimiter, 2)
	measures := strings.TrimSpace(subParts[0])
	guide := ""
	if len(subParts) > 1 {
		guide = strings.TrimSpace(subParts[1])
	}

	docs := GeneratedDocuments{SIS: sis, Measures: measures, Guide: guide}
	if docs.SIS == "" {
		docs.SIS = fallbackSIS
	}
	if docs.Measures == "" {
		docs.Measures = fallbackMeasures
	}
	if docs.Guide == "" {
		docs.Guide = fallbackGuide
	}
	return docs
}

// Enhance generates the narrative SIS, measures plan and shift guide.
func (d *DocumentService) Enhance(ctx context.Context, sess *session.Session) (GeneratedDocuments, error) {
	return d.GenerateEnhanced(ctx, sess.ID, d.EnhancePrompt(sess))
}

// GenerateEnhanced runs the narrative generation for an already assembled
// prompt and splits the response into the three documents.
func (d *DocumentService) GenerateEnhanced(ctx context.Context, sessionID, prompt string) (GeneratedDocuments, error) {
	if d.generator == nil {
		return GeneratedDocuments{}, fmt.Errorf("text generation is not configured")
	}
	text, err := d.generator.Generate(ctx, "enhance", prompt)
	if err != nil {
		return GeneratedDocuments{}, err
	}

	docs := splitGenerated(text)
	d.logger.WithFields(logrus.Fields{
		"session_id": sessionID,
		"sis_len":    len(docs.SIS),
		"guide_len":  len(docs.Guide),
	}).Info("Generated intake documents")
	return docs, nil
}

// FillPrompt builds the structured assessment quick-fill prompt. The
// response must be a single JSON object in the answer-row schema.
func (d *DocumentService) FillPrompt(sess *session.Session) string {
	diagStr := strings.Join(sess.Client.Diagnoses, ", ")

	var ctx strings.Builder
	fmt.Fprintf(&ctx, "Klient: %s\nDiagnosen: %s\nSIS-Einträge:\n", sess.Client.Name, diagStr)
	sess.Selections.Range(func(id domain.ItemID, rec domain.SelectionRecord) bool {
		if !rec.Checked {
			return true
		}
		item, found := d.catalog.Resolve(id)
		if !found {
			return true
		}
		fmt.Fprintf(&ctx, "- %s: %s %s\n", item.Name, strings.Join(rec.SubTags, ", "), rec.DetailVal)
		return true
	})

	return fmt.Sprintf(`Analysiere den Klienten für den Pflegegrad (NBA). Gib NUR ein valides JSON Objekt zurück.
Schema: { "m1": [5], "m2": [11], "m3": [13], "m4": [13], "m5": 0, "m6": [6] }
Kontext:
%s`, ctx.String())
}

// FillAssessment asks the generation service for a proposed answer set and
// returns it as a patch. Code fences around the JSON are tolerated; a
// response without any answer rows is rejected.
func (d *DocumentService) FillAssessment(ctx context.Context, sess *session.Session) (domain.ModuleAnswersPatch, error) {
	return d.GenerateAssessment(ctx, d.FillPrompt(sess))
}

// GenerateAssessment runs the quick-fill generation for an already assembled
// prompt.
func (d *DocumentService) GenerateAssessment(ctx context.Context, prompt string) (domain.ModuleAnswersPatch, error) {
	if d.generator == nil {
		return domain.ModuleAnswersPatch{}, fmt.Errorf("text generation is not configured")
	}
	text, err := d.generator.Generate(ctx, "assessment-fill", prompt)
	if err != nil {
		return domain.ModuleAnswersPatch{}, err
	}

	var patch domain.ModuleAnswersPatch
	if err := json.Unmarshal([]byte(textgen.StripCodeFence(text)), &patch); err != nil {
		return domain.ModuleAnswersPatch{}, fmt.Errorf("failed to parse assessment response: %w", err)
	}
	if patch.Empty() {
		return domain.ModuleAnswersPatch{}, fmt.Errorf("assessment response contained no answers")
	}
	return patch, nil
}

// Package letter renders public-records correspondence: initial request
// letters built from record-type templates, administrative appeals, and
// follow-ups for overdue requests. Rendering is pure text assembly; anything
// the caller has not supplied comes out as a bracketed placeholder so drafts
// can be completed by hand.
package letter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/example/foia/internal/core/deadline"
	"github.com/example/foia/internal/models"
	"github.com/example/foia/internal/refdata"
)

const dateLayout = "January 2, 2006"

// Sender identifies the requester in the letterhead block. Empty fields
// render as placeholders.
type Sender struct {
	Name         string
	Address      string
	CityStateZip string
	Email        string
	Phone        string
}

func (s Sender) block() string {
	return strings.Join([]string{
		orPlaceholder(s.Name, "Your Name"),
		orPlaceholder(s.Address, "Your Address"),
		orPlaceholder(s.CityStateZip, "City, State, ZIP Code"),
		orPlaceholder(s.Email, "Email Address"),
		orPlaceholder(s.Phone, "Phone Number"),
	}, "\n")
}

func (s Sender) signature() string {
	return orPlaceholder(s.Name, "Your Name")
}

func orPlaceholder(v, placeholder string) string {
	if v != "" {
		return v
	}
	return "[" + placeholder + "]"
}

// ComposeParams collects everything needed to render an initial request
// letter.
type ComposeParams struct {
	Template       Template
	Fields         map[string]string
	Agency         string
	Jurisdiction   string
	EstimatedTotal float64
	Sender         Sender
	Now            time.Time
}

// Compose renders a complete request letter: letterhead, recipient block,
// the record-type body, then the standard format, fee waiver, deadline,
// preservation, and contact paragraphs.
func Compose(p ComposeParams) string {
	profile, known := refdata.Lookup(p.Jurisdiction)

	stateName := "[State]"
	statute := "the applicable public records law"
	displayTime := "a reasonable time"
	statuteLine := ""
	if known {
		stateName = profile.Name
		statute = profile.Statute
		displayTime = profile.DisplayTime
		statuteLine = "Statute: " + profile.Statute + "\n"
	}

	feeThreshold := 50.0
	if p.EstimatedTotal > 0 {
		feeThreshold = p.EstimatedTotal
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n%s\n\n", p.Sender.block(), p.Now.Format(dateLayout))
	fmt.Fprintf(&b, "%s\n%s Public Records Officer\n[Agency Address]\n[City, State, ZIP Code]\n\n",
		orPlaceholder(p.Agency, "Agency Name"), stateName)
	fmt.Fprintf(&b, "Re: Public Records Request — %s\n%s\n", p.Template.Name, statuteLine)
	b.WriteString("Dear Records Officer:\n\n")
	fmt.Fprintf(&b, "Pursuant to %s, I request access to and copies of the following records:\n\n", statute)
	b.WriteString(p.Template.Render(p.Fields))
	b.WriteString("\n\n")
	b.WriteString("FORMAT: Electronic format preferred (searchable PDFs for documents, native format for audio/video), with all attachments and metadata intact.\n\n")
	fmt.Fprintf(&b, "FEE WAIVER REQUEST: I request a fee waiver as this request serves the public interest in government transparency and accountability. If fees will exceed $%s, please contact me before proceeding.\n\n",
		formatAmount(feeThreshold))
	fmt.Fprintf(&b, "DEADLINE: Under %s, a response is due within %s. Please acknowledge receipt within 5 business days and provide an estimated date of completion.\n\n",
		statute, displayTime)
	b.WriteString("PRESERVATION: Please preserve all responsive records and do not delete, destroy, or alter any potentially responsive documents.\n\n")
	b.WriteString("CONTACT: Please contact me if you need clarification or have questions about this request.\n\n")
	fmt.Fprintf(&b, "Sincerely,\n%s", p.Sender.signature())

	return b.String()
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// AppealReason categorizes why an agency response is being appealed.
type AppealReason string

const (
	AppealImproperDenial     AppealReason = "improper-denial"
	AppealExcessiveFees      AppealReason = "excessive-fees"
	AppealExcessiveDelay     AppealReason = "excessive-delay"
	AppealInadequateSearch   AppealReason = "inadequate-search"
	AppealImproperRedactions AppealReason = "improper-redactions"
	AppealOther              AppealReason = "other"
)

var appealReasonText = map[AppealReason]string{
	AppealImproperDenial:     "The denial of my request was improper and not justified under the applicable exemptions",
	AppealExcessiveFees:      "The fees assessed are excessive and not authorized by law",
	AppealExcessiveDelay:     "The agency has failed to respond within the statutory timeframe",
	AppealInadequateSearch:   "The agency's search for responsive records was inadequate",
	AppealImproperRedactions: "The redactions applied to responsive records are overbroad and not justified",
	AppealOther:              "The agency's response to my request was inadequate for the following reasons",
}

// ValidAppealReason reports whether reason is a recognized appeal category.
func ValidAppealReason(reason string) bool {
	_, ok := appealReasonText[AppealReason(reason)]
	return ok
}

// AppealReasons returns the recognized appeal categories.
func AppealReasons() []string {
	return []string{
		string(AppealImproperDenial),
		string(AppealExcessiveFees),
		string(AppealExcessiveDelay),
		string(AppealInadequateSearch),
		string(AppealImproperRedactions),
		string(AppealOther),
	}
}

// AppealData collects everything needed to render an administrative appeal.
type AppealData struct {
	OriginalRequestDate time.Time
	DenialDate          *time.Time
	DenialReason        string
	Reason              AppealReason
	Explanation         string
	LegalBasis          []string
	Sender              Sender
	Now                 time.Time
}

// Appeal renders an administrative appeal letter challenging a denial or
// inadequate response.
func Appeal(data AppealData) string {
	reasonText, ok := appealReasonText[data.Reason]
	if !ok {
		reasonText = appealReasonText[AppealOther]
	}

	denialDate := "[Date]"
	if data.DenialDate != nil {
		denialDate = data.DenialDate.Format(dateLayout)
	}

	responseKind := "inadequate response"
	agencyAction := "failed to adequately respond to my request"
	if data.DenialDate != nil {
		responseKind = "denial"
	}
	if data.DenialReason != "" {
		agencyAction = fmt.Sprintf("denied my request, stating: %q", data.DenialReason)
	}

	legalCitations := ""
	if len(data.LegalBasis) > 0 {
		var cites strings.Builder
		cites.WriteString("\n\nLEGAL BASIS:\n")
		for i, basis := range data.LegalBasis {
			if i > 0 {
				cites.WriteString("\n")
			}
			cites.WriteString("• " + basis)
		}
		legalCitations = cites.String()
	}

	fourthRelief := "Respond within the timeframe required by law"
	feeWaiverClause := ""
	if data.Reason == AppealExcessiveFees {
		fourthRelief = "Waive or substantially reduce the fees"
		feeWaiverClause = " Accordingly, I request that fees be waived pursuant to the public interest fee waiver provision of the applicable statute."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n%s\n\n", data.Sender.block(), data.Now.Format(dateLayout))
	b.WriteString("[Agency Name]\n[Agency Address]\n[City, State, ZIP Code]\n\n")
	b.WriteString("Re: ADMINISTRATIVE APPEAL — Public Records Request\n")
	fmt.Fprintf(&b, "Original Request Date: %s\n", data.OriginalRequestDate.Format(dateLayout))
	fmt.Fprintf(&b, "Denial Date: %s\n\n", denialDate)
	b.WriteString("Dear Records Officer / Appeals Officer:\n\n")
	fmt.Fprintf(&b, "I am writing to appeal the %s to my public records request dated %s.\n\n",
		responseKind, data.OriginalRequestDate.Format(dateLayout))
	fmt.Fprintf(&b, "BACKGROUND:\nOn %s, I submitted a public records request seeking [brief description]. On %s, the agency %s.\n\n",
		data.OriginalRequestDate.Format(dateLayout), denialDate, agencyAction)
	fmt.Fprintf(&b, "BASIS FOR APPEAL:\n%s. %s%s\n\n", reasonText, data.Explanation, legalCitations)
	b.WriteString("REQUESTED RELIEF:\nI respectfully request that you:\n")
	b.WriteString("1. Reverse the denial and produce all responsive records;\n")
	b.WriteString("2. Conduct a thorough search for all responsive records;\n")
	b.WriteString("3. Release all non-exempt portions of records with a detailed exemption log;\n")
	fmt.Fprintf(&b, "4. %s.\n\n", fourthRelief)
	fmt.Fprintf(&b, "PUBLIC INTEREST:\nThis request serves a significant public interest in [explain public interest - transparency, accountability, public safety, etc.].%s\n\n", feeWaiverClause)
	b.WriteString("SEGREGABILITY:\nIf any portions of responsive records are exempt, I request that all segregable, non-exempt portions be released immediately.\n\n")
	b.WriteString("I request a written determination on this appeal within the time required by law. Please contact me if you require any additional information.\n\n")
	fmt.Fprintf(&b, "Sincerely,\n%s\n\n", data.Sender.signature())
	b.WriteString("cc: [Agency Head, General Counsel, or State FOI Officer if applicable]")

	return b.String()
}

// FollowUp renders a follow-up letter with a preservation notice for a
// request that has gone unanswered.
func FollowUp(req models.Request, sender Sender, now time.Time) string {
	daysSince := 0
	submittedDate := "[Date]"
	if req.SubmittedDate != nil {
		daysSince = deadline.DaysUntil(now, *req.SubmittedDate)
		submittedDate = req.SubmittedDate.Format(dateLayout)
	}

	statutoryDeadline := "the statutory timeframe"
	if profile, ok := refdata.Lookup(req.Jurisdiction); ok {
		statutoryDeadline = profile.DisplayTime
	}

	responseSoFar := "any response to"
	if req.AcknowledgedDate != nil {
		responseSoFar = "a substantive response to"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n%s\n\n", sender.block(), now.Format(dateLayout))
	fmt.Fprintf(&b, "%s\n[Agency Address]\n[City, State, ZIP Code]\n\n", orPlaceholder(req.Agency, "Agency Name"))
	b.WriteString("Re: FOLLOW-UP — Overdue Public Records Request\n")
	fmt.Fprintf(&b, "Original Request Date: %s\n", submittedDate)
	b.WriteString("Request ID/Reference: [If provided by agency]\n\n")
	b.WriteString("Dear Records Officer:\n\n")
	fmt.Fprintf(&b, "I am writing to follow up on my public records request submitted %d days ago on %s.\n\n",
		daysSince, submittedDate)
	fmt.Fprintf(&b, "ORIGINAL REQUEST:\n%s\n\n", req.Description)
	fmt.Fprintf(&b, "STATUS:\nTo date, I have not received %s my request. Under applicable law, the agency is required to respond within %s. This deadline has now passed.\n\n",
		responseSoFar, statutoryDeadline)
	b.WriteString("PRESERVATION NOTICE:\nThis letter serves as a preservation notice. All responsive records must be preserved and must not be destroyed, altered, or transferred. This includes emails, electronic documents, and any backup systems.\n\n")
	b.WriteString("REQUESTED ACTION:\nI request that you:\n")
	b.WriteString("1. Immediately acknowledge this request if you have not already done so;\n")
	b.WriteString("2. Provide a date by which responsive records will be produced;\n")
	b.WriteString("3. If responsive records have already been compiled, produce them immediately;\n")
	b.WriteString("4. Provide a detailed explanation for any delay;\n")
	b.WriteString("5. Confirm that all responsive records are being preserved.\n\n")
	b.WriteString("Please respond within 5 business days. Continued delay may require me to seek legal remedies, including mandamus action or filing a complaint with [relevant oversight body].\n\n")
	b.WriteString("I appreciate your prompt attention to this matter.\n\n")
	fmt.Fprintf(&b, "Sincerely,\n%s", sender.signature())
	if req.Jurisdiction != "" {
		b.WriteString("\n\ncc: [State FOI Officer or relevant oversight body]")
	}

	return b.String()
}

package letter

import (
	"fmt"
	"strings"
)

// Template describes one record category: the fields the caller should
// collect, a pure rendering function producing the letter body from those
// fields, and display guidance. Render is a strategy value; missing fields
// render as bracketed placeholders so a partially filled letter is still
// usable as a draft.
type Template struct {
	ID          string
	Name        string
	Description string
	KeyFields   []string
	Render      func(fields map[string]string) string
	Tips        []string
	FeeEstimate string
}

// field returns the collected value or a bracketed placeholder.
func field(fields map[string]string, key, placeholder string) string {
	if v := fields[key]; v != "" {
		return v
	}
	return "[" + placeholder + "]"
}

// TemplateOrder lists record types in display order.
var TemplateOrder = []string{
	"body-camera",
	"police-report",
	"emails",
	"contracts",
	"meeting-minutes",
	"financial-records",
	"personnel-files",
	"inspection-reports",
	"surveillance-video",
	"911-calls",
	"use-of-force",
	"complaints",
	"policies",
	"general",
}

// Lookup returns the template for a record type.
func Lookup(recordType string) (Template, bool) {
	t, ok := templates[recordType]
	return t, ok
}

// All returns every template in display order.
func All() []Template {
	out := make([]Template, 0, len(TemplateOrder))
	for _, id := range TemplateOrder {
		out = append(out, templates[id])
	}
	return out
}

// ValidRecordType reports whether recordType has a registered template.
func ValidRecordType(recordType string) bool {
	_, ok := templates[recordType]
	return ok
}

var templates = map[string]Template{
	"body-camera": {
		ID:          "body-camera",
		Name:        "Body-Worn Camera Footage",
		Description: "Request police body camera or dashboard camera footage",
		KeyFields:   []string{"date", "time", "location", "officerName", "caseNumber"},
		Render: func(p map[string]string) string {
			return strings.TrimSpace(fmt.Sprintf(`
SUBJECT MATTER: Body-Worn Camera (BWC) and Dashboard Camera Footage

I request access to and copies of all body-worn camera footage and dashboard camera footage from the following incident:

INCIDENT DETAILS:
- Date: %s
- Time: %s
- Location: %s
- Officer(s): %s
- Case/CAD Number: %s

REQUESTED RECORDS:
1. All BWC footage from all officers present at the scene
2. All dashboard camera footage from vehicles at the scene
3. Any related audio recordings
4. CAD (Computer-Aided Dispatch) records for this incident
5. Incident report narrative
6. Metadata showing when footage was accessed, by whom, and whether it was edited

FORMAT: Electronic format (MP4 or native format), with metadata intact. If redaction is necessary, please provide a redaction log specifying what was redacted and under what exemption.

PUBLIC INTEREST: This request serves the public interest in transparency and police accountability.`,
				field(p, "date", "Date of incident"),
				field(p, "time", "Approximate time range"),
				field(p, "location", "Specific address or intersection"),
				field(p, "officerName", "Officer names if known, or responding unit numbers"),
				field(p, "caseNumber", "If known")))
		},
		Tips: []string{
			"Be as specific as possible about date, time, and location",
			"Include officer names or badge numbers if known",
			"Request CAD records to cross-reference",
			"Ask for metadata to verify authenticity",
			"Request a redaction log if portions are withheld",
		},
		FeeEstimate: "$50-$200 depending on jurisdiction",
	},

	"police-report": {
		ID:          "police-report",
		Name:        "Police Reports & Incident Records",
		Description: "Request police reports, arrest records, or incident documentation",
		KeyFields:   []string{"caseNumber", "date", "location", "involvedParties"},
		Render: func(p map[string]string) string {
			return strings.TrimSpace(fmt.Sprintf(`
SUBJECT MATTER: Police Reports and Incident Records

I request access to and copies of all records related to the following incident:

INCIDENT IDENTIFICATION:
- Case/Report Number: %s
- Date of Incident: %s
- Location: %s
- Involved Parties: %s

REQUESTED RECORDS:
1. Initial incident report and all supplemental reports
2. Arrest reports and booking records
3. Witness statements and interviews
4. Evidence logs and chain of custody documentation
5. Use of force reports (if applicable)
6. Dispatch logs and CAD records
7. Any audio/video recordings related to the incident

FORMAT: Electronic format (searchable PDF preferred), with all attachments and exhibits.`,
				field(p, "caseNumber", "Case number"),
				field(p, "date", "Date"),
				field(p, "location", "Location"),
				field(p, "involvedParties", "Names if known")))
		},
		Tips: []string{
			"Include the case or report number if you have it",
			"Request all supplemental reports, not just the initial report",
			"Ask for evidence logs to know what else exists",
			"Request dispatch/CAD records for complete timeline",
		},
		FeeEstimate: "$25-$100 typically",
	},

	"emails": {
		ID:          "emails",
		Name:        "Email Communications",
		Description: "Request email correspondence between officials",
		KeyFields:   []string{"dateRange", "senders", "recipients", "keywords", "subject"},
		Render: func(p map[string]string) string {
			return strings.TrimSpace(fmt.Sprintf(`
SUBJECT MATTER: Email Communications

I request access to and copies of all email communications meeting the following criteria:

SEARCH PARAMETERS:
- Date Range: %s
- Sender(s): %s
- Recipient(s): %s
- Subject Matter: %s
- Keywords: %s

REQUESTED RECORDS:
1. All email messages (sent and received) matching the above criteria
2. All attachments to those emails
3. Calendar invitations and meeting requests related to this topic
4. Email metadata (headers, routing information, timestamps)

FORMAT: Electronic format in native format (PST, MBOX, or EML) with metadata intact, or searchable PDFs with attachments.

SCOPE: Please search all relevant email accounts, including shared departmental accounts, archived or backup systems, and personal devices used for government business if applicable per policy.

SEGREGABILITY: If any emails contain exempt information, please produce the non-exempt portions with redaction logs explaining each withholding.`,
				field(p, "dateRange", "From Date] to [To Date"),
				field(p, "senders", "Names, titles, or departments"),
				field(p, "recipients", "Names, titles, or departments"),
				field(p, "subject", "Brief description of topic"),
				field(p, "keywords", "Specific search terms, phrases, or names")))
		},
		Tips: []string{
			"Use specific keywords and phrases, not general topics",
			"Name specific individuals, not just departments",
			"Request metadata to verify completeness",
			"Specify date ranges that are reasonable but comprehensive",
		},
		FeeEstimate: "$100-$500+ for large requests",
	},

	"contracts": {
		ID:          "contracts",
		Name:        "Contracts & Agreements",
		Description: "Request government contracts, vendor agreements, or procurement records",
		KeyFields:   []string{"vendor", "contractAmount", "dateRange", "contractType"},
		Render: func(p map[string]string) string {
			return strings.TrimSpace(fmt.Sprintf(`
SUBJECT MATTER: Government Contracts and Agreements

I request access to and copies of all records related to the following contract(s):

CONTRACT IDENTIFICATION:
- Vendor/Contractor: %s
- Contract Amount/Range: %s
- Date Range: %s
- Contract Type: %s

REQUESTED RECORDS:
1. Original executed contract and all amendments
2. Request for Proposals (RFP) and all bids or proposals received
3. Bid tabulation sheets and evaluation criteria
4. Justification for contractor selection
5. Payment records and invoices
6. Correspondence between agency and contractor
7. Change orders and modifications

FORMAT: Electronic format (searchable PDF) with all attachments and exhibits.

PUBLIC INTEREST: This request serves the public's interest in transparency in government spending and contractor accountability.`,
				field(p, "vendor", "Name of company/individual"),
				field(p, "contractAmount", "Dollar amount or range"),
				field(p, "dateRange", "Date range"),
				field(p, "contractType", "Service type, e.g., construction, consulting, IT services")))
		},
		Tips: []string{
			"Include contract numbers if known",
			"Request the full procurement file, not just the signed contract",
			"Ask for all bids to understand the selection process",
			"Request payment records to verify amounts",
		},
		FeeEstimate: "$50-$200 typically",
	},

	"meeting-minutes": {
		ID:          "meeting-minutes",
		Name:        "Meeting Minutes & Agendas",
		Description: "Request records of public meetings, board meetings, or official gatherings",
		KeyFields:   []string{"meetingBody", "dateRange", "topic"},
		Render: func(p map[string]string) string {
			return strings.TrimSpace(fmt.Sprintf(`
SUBJECT MATTER: Meeting Records - Minutes, Agendas, and Related Materials

I request access to and copies of all records related to meetings of:

MEETING IDENTIFICATION:
- Governing Body: %s
- Date Range: %s
- Topic/Subject: %s

REQUESTED RECORDS:
1. Meeting agendas (preliminary and final)
2. Meeting minutes (draft and approved)
3. Staff reports and recommendations
4. Public comments (written and transcribed)
5. Audio/video recordings of meetings
6. Presentation materials and background materials distributed to members
7. Voting records and roll calls

FORMAT: Electronic format (audio/video in native format, documents as searchable PDFs).

PUBLIC INTEREST: These records document public deliberations on matters of community concern.`,
				field(p, "meetingBody", "City Council, Board of Supervisors, Commission, etc."),
				field(p, "dateRange", "From Date] to [To Date"),
				field(p, "topic", "Specific topic or agenda item if applicable")))
		},
		Tips: []string{
			"Request both draft and final minutes",
			"Ask for audio/video even if minutes exist",
			"Request background materials given to board members",
			"Request email discussions about agenda items",
		},
		FeeEstimate: "$25-$150 typically",
	},

	"financial-records": {
		ID:          "financial-records",
		Name:        "Financial Records & Budgets",
		Description: "Request budget documents, expenditure records, or financial reports",
		KeyFields:   []string{"department", "fiscalYear", "accountCategory"},
		Render: func(p map[string]string) string {
			return strings.TrimSpace(fmt.Sprintf(`
SUBJECT MATTER: Financial Records and Budget Documentation

I request access to and copies of all financial records for:

SCOPE:
- Department/Agency: %s
- Fiscal Year(s): %s
- Account Category: %s

REQUESTED RECORDS:
1. Adopted budget documents and all amendments
2. Detailed expenditure reports by line item
3. Revenue reports and projections
4. Payroll records (including overtime)
5. Purchase orders, requisitions, and credit card statements
6. Travel and expense reimbursements
7. Audit reports (internal and external)

FORMAT: Electronic format, preferably in spreadsheet format (Excel, CSV) for financial data, and searchable PDF for narrative documents.

PUBLIC INTEREST: This request serves the public's right to transparency in government spending and fiscal management.`,
				field(p, "department", "Specific department or entire agency"),
				field(p, "fiscalYear", "FY 2023-24, etc."),
				field(p, "accountCategory", "Personnel, capital expenditures, specific line items")))
		},
		Tips: []string{
			"Request data in Excel/CSV format for easier analysis",
			"Be specific about time periods and departments",
			"Ask for both budgeted and actual expenditures",
			"Request audit reports for context",
		},
		FeeEstimate: "$50-$250 depending on volume",
	},

	"personnel-files": {
		ID:          "personnel-files",
		Name:        "Personnel Files & Employment Records",
		Description: "Request employee personnel files (note: often has privacy restrictions)",
		KeyFields:   []string{"employeeName", "position", "department", "dateRange"},
		Render: func(p map[string]string) string {
			return strings.TrimSpace(fmt.Sprintf(`
SUBJECT MATTER: Personnel Records

I request access to and copies of releasable personnel records for:

EMPLOYEE IDENTIFICATION:
- Name: %s
- Position: %s
- Department: %s
- Time Period: %s

REQUESTED RECORDS (to the extent releasable under applicable law):
1. Employment application, job description, and offer letter
2. Salary and compensation history
3. Performance evaluations
4. Disciplinary actions and investigations
5. Promotion and demotion records
6. Commendations and awards
7. Separation/resignation records and settlement agreements

NOTE ON PRIVACY: I understand that personnel records may be subject to privacy protections. Please release all records that are public under the applicable statute. For any withholdings, please provide a detailed exemption log.

SEGREGABILITY: If portions of records are exempt, please redact only the exempt portions and release the remainder.`,
				field(p, "employeeName", "Employee name"),
				field(p, "position", "Job title"),
				field(p, "department", "Department"),
				field(p, "dateRange", "Employment dates or specific period")))
		},
		Tips: []string{
			"Many personnel records are protected by privacy laws",
			"Disciplinary records of police/public safety are often more accessible",
			"Request salary information separately - usually public",
			"Be prepared for heavy redactions or denials",
		},
		FeeEstimate: "$50-$200; often partially denied",
	},

	"inspection-reports": {
		ID:          "inspection-reports",
		Name:        "Inspection & Compliance Reports",
		Description: "Request health, safety, or regulatory inspection records",
		KeyFields:   []string{"facility", "location", "inspectionType", "dateRange"},
		Render: func(p map[string]string) string {
			return strings.TrimSpace(fmt.Sprintf(`
SUBJECT MATTER: Inspection and Compliance Records

I request access to and copies of all inspection and compliance records for:

FACILITY/LOCATION:
- Name: %s
- Address: %s
- Inspection Type: %s
- Date Range: %s

REQUESTED RECORDS:
1. All inspection reports and checklists
2. Violation notices and citations
3. Corrective action plans and follow-up reports
4. Photographic evidence from inspections
5. Complaint records that triggered inspections
6. Compliance certifications and permits
7. Previous inspection history

FORMAT: Electronic format (searchable PDFs with any photos or attachments).

PUBLIC INTEREST: These records serve the public's interest in health and safety oversight and regulatory compliance.`,
				field(p, "facility", "Business name or facility name"),
				field(p, "location", "Address"),
				field(p, "inspectionType", "Health, fire, building, environmental, etc."),
				field(p, "dateRange", "Date range")))
		},
		Tips: []string{
			"Be specific about the type of inspection (health, fire, building, etc.)",
			"Request the full inspection history, not just recent reports",
			"Ask for any complaints that led to inspections",
			"Ask for follow-up reports showing compliance",
		},
		FeeEstimate: "$25-$100 typically",
	},

	"surveillance-video": {
		ID:          "surveillance-video",
		Name:        "Surveillance & Security Footage",
		Description: "Request video from public buildings or transportation",
		KeyFields:   []string{"location", "date", "time", "cameraLocation"},
		Render: func(p map[string]string) string {
			return strings.TrimSpace(fmt.Sprintf(`
SUBJECT MATTER: Surveillance and Security Camera Footage

I request access to and copies of surveillance video footage from:

INCIDENT DETAILS:
- Location: %s
- Date: %s
- Time: %s
- Camera Location: %s

REQUESTED RECORDS:
1. All video footage from cameras with a view of the specified location
2. Video from adjacent cameras that may have captured relevant activity
3. Logs showing camera operational status
4. Camera placement maps or diagrams
5. Metadata showing chain of custody

TECHNICAL SPECIFICATIONS: Native video format (MP4, AVI, or proprietary format with player) at the highest available resolution.

URGENCY: Video surveillance systems often overwrite footage within days. Please preserve all responsive footage immediately upon receipt of this request.`,
				field(p, "location", "Specific building/facility/transit station"),
				field(p, "date", "Date"),
				field(p, "time", "Time range, be as specific as possible"),
				field(p, "cameraLocation", "Specific camera or area: entrance, platform, parking lot, etc.")))
		},
		Tips: []string{
			"Make request ASAP - footage is often overwritten quickly",
			"Be very specific about date, time, and camera location",
			"Request a camera map to identify other relevant cameras",
			"Specify you want native format, not screenshots",
		},
		FeeEstimate: "$50-$300 depending on length",
	},

	"911-calls": {
		ID:          "911-calls",
		Name:        "911 Call Recordings & Dispatch Logs",
		Description: "Request emergency call recordings and dispatch records",
		KeyFields:   []string{"date", "time", "location", "callType"},
		Render: func(p map[string]string) string {
			return strings.TrimSpace(fmt.Sprintf(`
SUBJECT MATTER: 911 Call Recordings and Dispatch Records

I request access to and copies of all records related to the following 911 call/incident:

INCIDENT IDENTIFICATION:
- Date: %s
- Time: %s
- Location: %s
- Call Type: %s

REQUESTED RECORDS:
1. Audio recording of 911 call(s)
2. CAD (Computer-Aided Dispatch) records
3. Dispatch audio recordings (radio traffic)
4. Call-taker notes and incident details
5. Response times and unit assignments
6. Incident disposition codes

FORMAT: Audio in native format (MP3, WAV, or original format), documents as searchable PDF.

NOTE ON REDACTION: I understand that certain personal information may be redacted under applicable privacy laws. Please provide a redaction log for any audio portions that are muted or documents that are withheld.`,
				field(p, "date", "Date"),
				field(p, "time", "Approximate time"),
				field(p, "location", "Address or location"),
				field(p, "callType", "Nature of call if known")))
		},
		Tips: []string{
			"Be as specific as possible about date/time/location",
			"Request both the initial call and all dispatch traffic",
			"Be aware that caller information may be redacted",
			"Some jurisdictions charge per minute of audio",
		},
		FeeEstimate: "$25-$150 depending on audio length",
	},

	"use-of-force": {
		ID:          "use-of-force",
		Name:        "Use of Force Reports & Policies",
		Description: "Request police use of force incidents and related policies",
		KeyFields:   []string{"date", "location", "officerName", "incidentType"},
		Render: func(p map[string]string) string {
			return strings.TrimSpace(fmt.Sprintf(`
SUBJECT MATTER: Use of Force Records

I request access to and copies of all records related to use of force incidents as follows:

INCIDENT DETAILS:
- Date: %s
- Location: %s
- Officer(s): %s
- Type of Force: %s

REQUESTED RECORDS:
1. Use of force reports (officer narratives)
2. Supervisor review and investigation reports
3. Witness statements
4. Body-worn camera or other video evidence
5. Internal affairs investigation records (if applicable)
6. Review board findings and disciplinary actions taken (if any)
7. Use of force policies and procedures in effect at the time

FORMAT: Electronic format (video in native format, documents as searchable PDF).

PUBLIC INTEREST: This request serves the vital public interest in police accountability and transparency in use of force.`,
				field(p, "date", "Date or date range"),
				field(p, "location", "Location"),
				field(p, "officerName", "Names if known"),
				field(p, "incidentType", "Firearm, Taser, physical restraint, etc.")))
		},
		Tips: []string{
			"Can request specific incidents or aggregate data",
			"Request body camera footage in same request",
			"Request the use of force policy that was in effect",
			"Consider requesting data on patterns over time",
		},
		FeeEstimate: "$50-$300 depending on scope",
	},

	"complaints": {
		ID:          "complaints",
		Name:        "Complaints & Grievances",
		Description: "Request citizen complaints or internal grievances",
		KeyFields:   []string{"subject", "dateRange", "department", "complaintType"},
		Render: func(p map[string]string) string {
			return strings.TrimSpace(fmt.Sprintf(`
SUBJECT MATTER: Complaint and Grievance Records

I request access to and copies of all complaint records as follows:

COMPLAINT IDENTIFICATION:
- Subject: %s
- Date Range: %s
- Department: %s
- Type: %s

REQUESTED RECORDS:
1. Original complaint documents (forms, letters, emails)
2. Investigation reports and findings
3. Interview notes and witness statements
4. Investigator conclusions and recommendations
5. Disciplinary actions taken (if any)
6. Response letters to complainants
7. Statistical data on complaints received and outcomes

SCOPE: Both sustained and non-sustained complaints, closed and pending investigations to the extent releasable.

NOTE ON PRIVACY: While I understand some complainant information may be withheld, please release records showing the nature of each complaint, investigation findings, and any disciplinary action.`,
				field(p, "subject", "Subject of complaints - specific person, department, or issue"),
				field(p, "dateRange", "Date range"),
				field(p, "department", "Specific department or agency"),
				field(p, "complaintType", "Citizen complaints, internal grievances, discrimination claims, etc.")))
		},
		Tips: []string{
			"Specify whether you want complaints against a specific person or about a topic",
			"Request investigation outcomes, not just initial complaints",
			"Ask for both sustained and unsustained complaints",
			"Police complaints often have more disclosure than other employees",
		},
		FeeEstimate: "$50-$200",
	},

	"policies": {
		ID:          "policies",
		Name:        "Policies, Procedures & Training Materials",
		Description: "Request agency policies, standard operating procedures, or training materials",
		KeyFields:   []string{"policyTopic", "department", "dateRange"},
		Render: func(p map[string]string) string {
			return strings.TrimSpace(fmt.Sprintf(`
SUBJECT MATTER: Policies, Procedures, and Training Materials

I request access to and copies of all policies, procedures, and training materials related to:

SCOPE:
- Topic/Subject: %s
- Department: %s
- Time Period: %s

REQUESTED RECORDS:
1. Current policies and standard operating procedures (SOPs)
2. Historical/superseded policies showing changes over time
3. Policy revision history and justifications for changes
4. Training materials and curricula related to these policies
5. Policy compliance audits or reviews
6. Memos or directives implementing or interpreting policies

FORMAT: Electronic format (searchable PDF or Word documents).

NOTE: Policies and procedures are generally not exempt from disclosure unless they would compromise security or ongoing investigations. Please provide detailed justification for any withholdings.`,
				field(p, "policyTopic", "Specific topic, e.g., use of force, evidence handling, records retention"),
				field(p, "department", "Specific department or agency-wide"),
				field(p, "dateRange", "Current policies and/or historical policies")))
		},
		Tips: []string{
			"Request both current and historical versions to track changes",
			"Ask for training materials to see how policy is taught",
			"Request compliance audits to see if policy is followed",
			"Generally these should have minimal exemptions",
		},
		FeeEstimate: "$25-$100",
	},

	"general": {
		ID:          "general",
		Name:        "General Public Records Request",
		Description: "Template for any other type of public record",
		KeyFields:   []string{"description", "dateRange", "keywords"},
		Render: func(p map[string]string) string {
			return strings.TrimSpace(fmt.Sprintf(`
SUBJECT MATTER: %s

I request access to and copies of the following records:

DESCRIPTION OF RECORDS:
%s

TIMEFRAME: %s

KEYWORDS: %s

FORMAT: Electronic format (searchable PDF for documents, native format for audio/video), with all attachments and metadata intact.

SEGREGABILITY: If any portions of responsive records are exempt from disclosure, please redact only those specific portions and release the remainder. Please provide a detailed exemption log explaining each withholding.`,
				field(p, "description", "Describe the records you are seeking"),
				field(p, "description", "Provide a detailed description of the records you seek, including subject matter, names of people or organizations involved, specific document types, and the department or office that would have the records"),
				field(p, "dateRange", "Specify date range, e.g., January 1, 2023 through December 31, 2023"),
				field(p, "keywords", "Provide keywords or search terms that might help locate records")))
		},
		Tips: []string{
			"Be as specific as possible about what you're seeking",
			"Use the 'who, what, when, where, why' approach",
			"Provide keywords to help the search",
			"Give reasonable date ranges",
			"Request electronic format",
		},
		FeeEstimate: "Varies greatly",
	},
}

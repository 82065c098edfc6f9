package pdfexport

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
	"time"

	"recruitment-backend/lib/utils/helpers"
	dbmodels "recruitment-backend/models/db"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
)

const offerBodyTemplate = `Dear {{.ApplicantName}},<br><br>` +
	`We are pleased to offer you the position of <b>{{.Position}}</b> ` +
	`in the {{.Department}} department.<br><br>` +
	`Your starting salary will be {{.Salary}} and your first working day ` +
	`is {{.StartDate}}.<br><br>` +
	`Please confirm your decision through your applicant dashboard.<br>`

type offerLetterData struct {
	CompanyName   string
	ApplicantName string
	Position      string
	Department    string
	Salary        int
	StartDate     string
}

// GenerateOfferLetter renders the approved offer as a PDF, stamping the CEO
// signature image when one is stored.
func GenerateOfferLetter(companyName string, applicant dbmodels.Applicant, offer dbmodels.JobOffer, signature []byte, signatureName string) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateOfferLetter panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "", 14)
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}

	_, lineHt := pdf.GetFontSize()
	header := fmt.Sprintf("<b>%v</b><br>Job offer<br>%v<br>", companyName, helpers.FormatDate(time.Now()))
	html := pdf.HTMLBasicNew()
	html.Write(lineHt, header)

	posY := pdf.GetY()
	if posY < 50 {
		posY = 50
		pdf.SetY(posY)
	}

	tpl, err := template.New("offer_body").Parse(offerBodyTemplate)
	if err != nil {
		return nil, err
	}
	buf := new(bytes.Buffer)
	err = tpl.Execute(buf, offerLetterData{
		CompanyName:   companyName,
		ApplicantName: applicant.GetFullName(),
		Position:      offer.OfferDetails.Position,
		Department:    offer.OfferDetails.Department,
		Salary:        offer.OfferDetails.Salary,
		StartDate:     helpers.FormatDate(offer.OfferDetails.StartDate),
	})
	if err != nil {
		return nil, err
	}
	html = pdf.HTMLBasicNew()
	html.Write(lineHt, buf.String())

	if len(signature) > 0 {
		if err := putImg(pdf, signatureName, signature); err != nil {
			return nil, err
		}
		posY = pdf.GetY() + 10
		pageX, _, _ := pdf.PageSize(1)
		pdf.Image(signatureName, pageX-60, posY, 40, 0, false, "", 0, "")
	}

	buf = new(bytes.Buffer)
	err = pdf.Output(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func putImg(pdf *fpdf.Fpdf, fileName string, body []byte) error {
	imgType, err := GetImgType(fileName)
	if err != nil {
		return err
	}
	options := fpdf.ImageOptions{
		ReadDpi:   false,
		ImageType: imgType,
	}
	pdf.RegisterImageOptionsReader(fileName, options, bytes.NewReader(body))
	return pdf.Error()
}

func GetImgType(fileName string) (string, error) {
	pos := strings.LastIndex(fileName, ".")
	if pos < 0 {
		return "", errors.Errorf("cant detect image extension: %s", fileName)
	}
	return fileName[pos+1:], nil
}

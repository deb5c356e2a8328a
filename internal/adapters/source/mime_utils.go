package source

import (
	"bytes"
	"io"
	"mime"
	"mime/multipart"
	"net/mail"
	"strings"
)

// ExtractTextFromMessage extracts the analyzable text content from a message.
// Multipart messages contribute their text/plain parts; anything else
// (attachments, html alternatives, nested multiparts) is skipped.
func ExtractTextFromMessage(msg *mail.Message) (string, error) {
	contentType := msg.Header.Get("Content-Type")

	if !strings.Contains(strings.ToLower(contentType), "multipart/") {
		return readAll(msg.Body)
	}

	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil || !strings.HasPrefix(mediaType, "multipart/") {
		// Unparseable or lying Content-Type, treat the body as plain text
		return readAll(msg.Body)
	}

	boundary, ok := params["boundary"]
	if !ok {
		return readAll(msg.Body)
	}

	mr := multipart.NewReader(msg.Body, boundary)
	var textContent bytes.Buffer
	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Return whatever text we collected before the malformed part
			break
		}

		partContentType := part.Header.Get("Content-Type")
		if strings.Contains(strings.ToLower(partContentType), "text/plain") {
			partBytes, err := io.ReadAll(part)
			if err != nil {
				continue
			}
			textContent.Write(partBytes)
			textContent.WriteString("\n")
		}
	}

	return textContent.String(), nil
}

func readAll(r io.Reader) (string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DecodeEncodedHeader decodes RFC 2047 encoded-word headers, returning the
// input unchanged when it is not encoded or fails to decode.
func DecodeEncodedHeader(value string) string {
	if !strings.Contains(value, "=?") {
		return value
	}
	dec := new(mime.WordDecoder)
	decoded, err := dec.DecodeHeader(value)
	if err != nil {
		return value
	}
	return decoded
}

// addressList parses a recipient header into bare addresses, falling back to
// the raw comma-split header when it does not parse.
func addressList(header string) []string {
	if strings.TrimSpace(header) == "" {
		return nil
	}
	addrs, err := mail.ParseAddressList(header)
	if err != nil {
		parts := strings.Split(header, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		return out
	}
	out := make([]string, 0, len(addrs))
	for _, a := range addrs {
		out = append(out, a.Address)
	}
	return out
}

// senderAddress parses a From header into a bare address
func senderAddress(header string) string {
	if strings.TrimSpace(header) == "" {
		return ""
	}
	addr, err := mail.ParseAddress(header)
	if err != nil {
		return strings.TrimSpace(header)
	}
	return addr.Address
}

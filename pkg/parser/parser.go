// Copyright 2022 The jackal Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package xmppparser

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jackal-xmpp/stravaganza/v2"
)

const rootElementIndex = -1

// DefaultMaxStanzaSize is the stanza size limit used when none is configured.
const DefaultMaxStanzaSize = 64 * 1024

// ErrTooLargeStanza will be returned by Parse when the size of the serialized stanza is too large.
var ErrTooLargeStanza = errors.New("xmppparser: too large stanza")

// ErrNoElement will be returned by Parse when input contains no element.
var ErrNoElement = errors.New("xmppparser: no elements")

// Parser decodes serialized stanzas as published on the delivery bus or stored in a destination queue.
type Parser struct {
	maxStanzaSize int
}

// New creates a Parser instance that rejects inputs larger than maxStanzaSize bytes.
func New(maxStanzaSize int) *Parser {
	if maxStanzaSize <= 0 {
		maxStanzaSize = DefaultMaxStanzaSize
	}
	return &Parser{maxStanzaSize: maxStanzaSize}
}

// Parse decodes the first XML element contained in raw.
func (p *Parser) Parse(raw string) (stravaganza.Element, error) {
	if len(raw) > p.maxStanzaSize {
		return nil, ErrTooLargeStanza
	}
	d := &decoder{
		dec:   xml.NewDecoder(strings.NewReader(raw)),
		index: rootElementIndex,
	}
	return d.decode()
}

// ParseStanza decodes raw into a typed iq, presence or message stanza.
func (p *Parser) ParseStanza(raw string) (stravaganza.Stanza, error) {
	elem, err := p.Parse(raw)
	if err != nil {
		return nil, err
	}
	b := stravaganza.NewBuilderFromElement(elem)
	switch elem.Name() {
	case "iq":
		return b.BuildIQ()
	case "presence":
		return b.BuildPresence()
	case "message":
		return b.BuildMessage()
	}
	return nil, fmt.Errorf("xmppparser: unexpected stanza element <%s/>", elem.Name())
}

type decoder struct {
	dec       *xml.Decoder
	stack     []*stravaganza.Builder
	index     int
	inElement bool
}

func (d *decoder) decode() (stravaganza.Element, error) {
	for {
		t, err := d.dec.RawToken()
		if err != nil {
			if errors.Is(err, io.EOF) {
				if d.index != rootElementIndex {
					return nil, io.ErrUnexpectedEOF
				}
				return nil, ErrNoElement
			}
			return nil, err
		}
		switch t1 := t.(type) {
		case xml.CharData:
			if d.inElement {
				d.stack[d.index] = d.stack[d.index].WithText(string(t1))
			}

		case xml.StartElement:
			d.startElement(t1)

		case xml.EndElement:
			elem, err := d.closeElement(xmlName(t1.Name.Space, t1.Name.Local))
			if err != nil {
				return nil, err
			}
			if elem != nil {
				return elem, nil
			}
		}
	}
}

func (d *decoder) startElement(t xml.StartElement) {
	var attrs []stravaganza.Attribute
	for _, a := range t.Attr {
		attrs = append(attrs, stravaganza.Attribute{Label: xmlName(a.Name.Space, a.Name.Local), Value: a.Value})
	}
	d.stack = append(d.stack, stravaganza.NewBuilder(xmlName(t.Name.Space, t.Name.Local)).WithAttributes(attrs...))
	d.index = len(d.stack) - 1
	d.inElement = true
}

// closeElement returns the root element once it gets closed.
func (d *decoder) closeElement(name string) (stravaganza.Element, error) {
	if d.index == rootElementIndex {
		return nil, errUnexpectedEnd(name)
	}
	element := d.stack[d.index].Build()
	d.stack = d.stack[:d.index]

	if name != element.Name() {
		return nil, errUnexpectedEnd(name)
	}
	d.index = len(d.stack) - 1
	d.inElement = false

	if d.index == rootElementIndex {
		return element, nil
	}
	d.stack[d.index] = d.stack[d.index].WithChild(element)
	return nil, nil
}

func xmlName(space, local string) string {
	if len(space) > 0 {
		return fmt.Sprintf("%s:%s", space, local)
	}
	return local
}

func errUnexpectedEnd(name string) error {
	return fmt.Errorf("xmppparser: unexpected end element </%s>", name)
}

package render

// Template variants. classic and academic use the long month form, the
// rest the short one.
var variants = []variant{
	{"modern", shortMonth, modernCSS},
	{"minimal", shortMonth, minimalCSS},
	{"classic", longMonth, classicCSS},
	{"creative", shortMonth, creativeCSS},
	{"executive", shortMonth, executiveCSS},
	{"tech", shortMonth, techCSS},
	{"academic", longMonth, academicCSS},
	{"professional", shortMonth, professionalCSS},
	{"modern-gradient", shortMonth, modernGradientCSS},
	{"elegant", shortMonth, elegantCSS},
}

const baseCSS = `
* {
  margin: 0;
  padding: 0;
  box-sizing: border-box;
}

body {
  font-family: 'Arial', sans-serif;
  line-height: 1.6;
  color: #333;
  background: white;
}

.resume-container {
  max-width: 210mm;
  min-height: 297mm;
  margin: 0 auto;
  background: white;
  padding: 20mm;
}

h1, h2, h3, h4 {
  margin-bottom: 0.5em;
}

h1 {
  font-size: 28px;
  font-weight: bold;
}

h2 {
  font-size: 20px;
  font-weight: bold;
  border-bottom: 2px solid;
  padding-bottom: 5px;
  margin-bottom: 15px;
}

h3 {
  font-size: 16px;
  font-weight: bold;
}

p, li {
  margin-bottom: 8px;
}

.header {
  text-align: center;
  margin-bottom: 30px;
  padding-bottom: 20px;
}

.headline {
  font-size: 18px;
  color: #666;
  margin: 5px 0;
}

.contact-info {
  display: flex;
  justify-content: center;
  flex-wrap: wrap;
  gap: 20px;
  margin-top: 10px;
  font-size: 14px;
}

.section {
  margin-bottom: 25px;
}

.experience-item, .education-item, .project-item {
  margin-bottom: 20px;
}

.experience-header, .education-header, .project-header {
  display: flex;
  justify-content: space-between;
  align-items: baseline;
  margin-bottom: 10px;
}

.org {
  color: #666;
  font-weight: 600;
}

.detail {
  font-size: 14px;
  color: #666;
}

.item-note {
  font-style: italic;
  margin-top: 10px;
}

.date-location {
  text-align: right;
  font-size: 14px;
  color: #666;
}

.skills-grid {
  display: grid;
  grid-template-columns: repeat(auto-fit, minmax(200px, 1fr));
  gap: 15px;
}

.skill-category h4 {
  margin-bottom: 8px;
  font-size: 14px;
  text-transform: uppercase;
  letter-spacing: 1px;
}

.skill-tags {
  display: flex;
  flex-wrap: wrap;
  gap: 8px;
}

.skill-tag {
  padding: 4px 12px;
  border-radius: 15px;
  font-size: 12px;
  font-weight: 500;
}

ul {
  list-style-type: disc;
  margin-left: 20px;
}

.certifications-list {
  display: grid;
  gap: 10px;
}

.cert-item {
  display: flex;
  justify-content: space-between;
  align-items: center;
  padding: 8px 0;
  border-bottom: 1px solid #eee;
}

.cert-date {
  font-size: 14px;
  color: #666;
}

@media print {
  body { margin: 0; padding: 20px; }
  .no-print { display: none; }
  .page-break { page-break-before: always; }
}
`

const modernCSS = `
.modern h2 { color: #3B82F6; border-color: #3B82F6; }
.modern .header { border-bottom: 3px solid #3B82F6; }
.modern .skill-tag { background: rgba(59, 130, 246, 0.1); color: #3B82F6; }
`

const minimalCSS = `
.minimal h2 { color: #374151; border-color: #D1D5DB; }
.minimal .header { border-bottom: 1px solid #D1D5DB; }
.minimal .skill-tag { background: #F3F4F6; color: #374151; }
`

const classicCSS = `
.classic { font-family: 'Times New Roman', serif; }
.classic h2 { color: #D97706; border-color: #D97706; }
.classic .header { border-bottom: 3px solid #D97706; }
.classic .skill-tag { background: rgba(217, 119, 6, 0.1); color: #D97706; }
`

const creativeCSS = `
.creative h2 { color: #059669; border-color: #059669; }
.creative .header { border-bottom: 3px solid #059669; }
.creative .skill-tag { background: rgba(5, 150, 105, 0.1); color: #059669; }
`

const executiveCSS = `
.executive h2 { color: #7C3AED; border-color: #7C3AED; }
.executive .header { border-bottom: 3px solid #7C3AED; }
.executive .skill-tag { background: rgba(124, 58, 237, 0.1); color: #7C3AED; }
`

const techCSS = `
.tech { font-family: 'Courier New', monospace; }
.tech h2 { color: #10B981; border-color: #10B981; }
.tech .header { border-bottom: 3px solid #10B981; text-align: left; }
.tech .contact-info { justify-content: flex-start; }
.tech .skill-tag { background: #064E3B; color: #D1FAE5; border-radius: 4px; }
`

const academicCSS = `
.academic { font-family: 'Georgia', serif; }
.academic h2 { color: #1E3A8A; border-color: #1E3A8A; }
.academic .header { border-bottom: 1px solid #1E3A8A; }
.academic .skill-tag { background: rgba(30, 58, 138, 0.1); color: #1E3A8A; }
`

const professionalCSS = `
.professional h2 { color: #111827; border-color: #111827; }
.professional .header { border-bottom: 2px solid #111827; }
.professional .skill-tag { background: #E5E7EB; color: #111827; border-radius: 2px; }
`

const modernGradientCSS = `
.modern-gradient h2 { color: #6366F1; border-color: #6366F1; }
.modern-gradient .header {
  background: linear-gradient(135deg, #6366F1, #8B5CF6);
  color: white;
  border-radius: 8px;
  padding: 20px;
}
.modern-gradient .headline { color: #E0E7FF; }
.modern-gradient .skill-tag { background: rgba(99, 102, 241, 0.1); color: #6366F1; }
`

const elegantCSS = `
.elegant { font-family: 'Garamond', serif; }
.elegant h1 { letter-spacing: 2px; }
.elegant h2 { color: #9F7AEA; border-color: #9F7AEA; }
.elegant .header { border-bottom: 1px double #9F7AEA; }
.elegant .skill-tag { background: rgba(159, 122, 234, 0.1); color: #9F7AEA; }
`

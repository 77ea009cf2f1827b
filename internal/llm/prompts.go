package llm

// breakdownPrompt asks for the per-category score breakdown. The response is
// parsed defensively; fields the model gets wrong are dropped, not fatal.
const breakdownPrompt = `You are an expert resume reviewer. Score this resume against the job description below, category by category. Be honest about what's missing or weak.

Job description:
"""
%s
"""

Resume:
"""
%s
"""

Return ONLY a JSON object with this exact structure, no markdown, no explanation:
{
  "categories": {
    "keywords": {
      "score": 0-100,
      "matched": ["keyword present in both"],
      "missing": ["keyword in the JD but not the resume"],
      "missingByPriority": [{"keyword": "...", "criticality": "must-have|nice-to-have|bonus"}],
      "summary": "one-sentence keyword coverage summary"
    },
    "experience": {
      "score": 0-100,
      "userYears": <integer years of experience evident on the resume>,
      "benchmarkRange": {"min": <int>, "max": <int>, "median": <int>, "reasoning": "why this range"},
      "levelMatch": "below|aligned|above",
      "gaps": ["experience area the JD wants that the resume lacks"]
    },
    "accomplishments": {
      "score": 0-100,
      "hasMetrics": true|false,
      "userMetrics": ["metric the resume states"],
      "benchmarkMetrics": ["metric typical for this role"],
      "missingMetrics": ["metric type absent from the resume"],
      "accomplishmentTypes": [{"type": "snake_case_tag", "found": true|false, "evidence": "quote if found"}]
    },
    "atsCompliance": {
      "score": 0-100,
      "issues": ["formatting problem an ATS would choke on"],
      "warnings": ["minor formatting concern"],
      "sectionsFound": ["section present"],
      "sectionsMissing": ["standard section absent"]
    }
  }
}`

// benchmarkPrompt asks for the benchmark candidate profile for the role.
const benchmarkPrompt = `You are a hiring-market analyst. Describe the benchmark candidate for the role in this job description: the profile that reliably gets interviews.

Job description:
"""
%s
"""

Return ONLY a JSON object with this exact structure, no markdown, no explanation:
{
  "roleTitle": "...",
  "seniorityLevel": "...",
  "coreSkills": [
    {"skill": "...", "criticality": "must-have|nice-to-have|bonus", "whyMatters": "why this role needs it", "evidenceOfMastery": "how strong candidates demonstrate it"}
  ],
  "expectedAccomplishments": [
    {"type": "snake_case_tag", "description": "what benchmark candidates show", "exampleBullet": "a resume bullet a strong candidate would write", "metricsToInclude": ["metric name"]}
  ],
  "typicalMetrics": ["metric strong candidates quantify"]
}`
